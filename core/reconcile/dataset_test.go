package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataset(t *testing.T) {
	d := make(Dataset)
	d.Add("adana", "aladağ")
	d.Add("adana", "aladağ")
	d.Add("adana", "çukurova")
	d.Ensure("bolu")

	assert.Equal(t, []string{"adana", "bolu"}, d.Provinces())
	assert.Len(t, d["adana"], 2)
	assert.Empty(t, d["bolu"])
	assert.Equal(t, 2, d.DistrictCount())
	assert.True(t, d["adana"].Has("çukurova"))
	assert.False(t, d["adana"].Has("seyhan"))
	assert.Equal(t, []string{"aladağ", "çukurova"}, d["adana"].Sorted())
}
