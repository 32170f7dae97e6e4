// Package config provides configuration management for district-sync.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional config.yaml and a .env file. Defaults live next to each field as
// `default:"..."` struct tags and are registered through reflection, which
// also makes every key reachable from the environment.
//
// # Configuration Structure
//
//   - Division: input paths (gold list, admin and v1 dumps), report paths,
//     root sentinel id and the live table profile
//   - Database: optional MySQL connection for the live table target
//   - Storage: S3/MinIO credentials for s3:// paths
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Division.GoldPath)
package config
