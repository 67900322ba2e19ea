package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	important := DefaultDimension("name", "")
	important.Important = true
	return Config{
		Name: "Graduates",
		Dimensions: []DimensionMeta{
			important,
			DefaultDimension("  Employment Status ", ""),
			DefaultDimension("is_stem", "STEM Field"),
			{Key: "support", DisplayName: "Type of Support", MultiSelect: true},
		},
	}
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "employment status", NormalizeKey("  Employment Status\t"))
	assert.Equal(t, "is_stem", NormalizeKey("IS_STEM"))
}

func TestDefaultDimension(t *testing.T) {
	d := DefaultDimension("  Employment Status ", "")
	assert.Equal(t, "employment status", d.Key)
	assert.Equal(t, "Employment Status", d.DisplayName)
}

func TestConfigKeys(t *testing.T) {
	c := testConfig()
	assert.Equal(t, []string{"name", "employment status", "is_stem", "support"}, c.DimensionKeys())
	assert.Equal(t, []string{"name"}, c.ImportantKeys())
	assert.Equal(t, "STEM Field", c.DisplayName("is_stem"))
	assert.Equal(t, "Job Title", c.DisplayName("job title"))
}

func TestIsMultiSelect(t *testing.T) {
	c := testConfig()
	assert.True(t, c.IsMultiSelect("support"))
	assert.False(t, c.IsMultiSelect("is_stem"))
	assert.False(t, c.IsMultiSelect("undeclared"))
}

func TestRequire(t *testing.T) {
	c := testConfig()

	assert.NoError(t, c.Require([]string{"is_stem", "name", "employment status", "support", "extra"}))

	err := c.Require([]string{"name"})
	assert.ErrorIs(t, err, ErrMissingColumns)
	assert.Contains(t, err.Error(), "employment status, is_stem, support")
}
