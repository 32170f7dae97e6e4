package dbtable

import (
	"context"
	"regexp"
	"testing"

	"district-sync/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func expectColumns(mock sqlmock.Sqlmock, names ...string) {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, n := range names {
		rows.AddRow(n, "varchar(255)", "YES", "", nil, "")
	}
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `sehir`")).WillReturnRows(rows)
}

func TestSource_Load(t *testing.T) {
	db, mock := setupMockDB(t)

	expectColumns(mock, "id", "plaka", "city_name", "province_id")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`, `city_name`, `province_id` FROM `sehir`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city_name", "province_id"}).
			AddRow(int64(100), []byte("Şehirler"), nil).
			AddRow(int64(101), []byte("İstanbul (Avrupa)"), int64(100)).
			AddRow(int64(102), []byte("İstanbul (Anadolu)"), int64(100)).
			AddRow(int64(103), []byte("Ankara"), int64(100)).
			AddRow(int64(121), []byte("Gölbaşı"), int64(103)).
			AddRow(int64(200), []byte("Beşiktaş"), int64(101)).
			AddRow(int64(201), []byte("Kadıköy"), int64(102)).
			AddRow(int64(999), []byte("Yetim"), int64(555)))

	src := &Source{Label: "db-sehir", DB: db, Profile: DefaultProfile}
	assert.Equal(t, "db-sehir", src.Name())

	data, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, reconcile.Dataset{
		"ankara":   reconcile.NewSet("gölbaşı"),
		"istanbul": reconcile.NewSet("beşiktaş", "kadıköy"),
	}, data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSource_LoadMissingColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	expectColumns(mock, "id", "name", "parent_id")

	src := &Source{Label: "db-sehir", DB: db, Profile: DefaultProfile}
	_, err := src.Load(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "city_name")
	assert.Contains(t, err.Error(), "province_id")
}

func TestSource_LoadQueryError(t *testing.T) {
	db, mock := setupMockDB(t)

	expectColumns(mock, "id", "city_name", "province_id")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`, `city_name`, `province_id` FROM `sehir`")).
		WillReturnError(assert.AnError)

	src := &Source{Label: "db-sehir", DB: db, Profile: DefaultProfile}
	_, err := src.Load(context.Background())
	assert.Error(t, err)
}

func TestSource_LoadWithoutDB(t *testing.T) {
	src := &Source{Label: "db-sehir", Profile: DefaultProfile}
	_, err := src.Load(context.Background())
	assert.Error(t, err)
}

func TestProfile(t *testing.T) {
	assert.NoError(t, DefaultProfile.Validate())
	assert.Error(t, Profile{Table: "sehir"}.Validate())
	assert.Equal(t, []string{"id", "city_name", "province_id"}, DefaultProfile.Columns())
	assert.Equal(t, "SELECT `id`, `city_name`, `province_id` FROM `sehir`", DefaultProfile.selectQuery())
}
