package report

import "github.com/spektr-org/gradreport/schema"

// Graduate record columns, normalized.
const (
	ColName         = "name"
	ColUniversity   = "university attended"
	ColField        = "field of study"
	ColStatus       = "employment status"
	ColStem         = "is_stem"
	ColOrganization = "organization/company/sector"
	ColJobTitle     = "job title"
	ColContacts     = "contacts"
	ColEmail        = "email adress" // spelled as in the survey export
	ColYear         = "graduation year"
	ColGender       = "gender"
)

// Prospective-graduate response columns, normalized.
const (
	ColCareer  = "what career path are you most interested in after graduation?"
	ColSupport = "what kind of support would you find most helpful right now? (check all that apply)"
)

// StatusEmployed is the employment status checked for missing job details.
const StatusEmployed = "Employed"

// SupportOptions is the vocabulary matched against ColSupport.
var SupportOptions = []string{
	"cv writing support",
	"interview preparation",
	"job search strategies",
	"linkedin/profile branding",
	"networking opportunities",
	"entrepreneurship guidance",
	"understanding job market expectations",
}

// GraduatesSchema describes the graduate employment dataset.
func GraduatesSchema(file string) schema.Config {
	important := func(key, displayName string) schema.DimensionMeta {
		d := schema.DefaultDimension(key, displayName)
		d.Important = true
		return d
	}
	return schema.Config{
		Name: "Graduates",
		File: file,
		Dimensions: []schema.DimensionMeta{
			important(ColName, ""),
			important(ColUniversity, "University"),
			important(ColField, ""),
			important(ColStatus, ""),
			schema.DefaultDimension(ColStem, "Field Type"),
			schema.DefaultDimension(ColOrganization, "Organization"),
			schema.DefaultDimension(ColJobTitle, ""),
			important(ColContacts, ""),
			important(ColEmail, ""),
			schema.DefaultDimension(ColYear, ""),
			schema.DefaultDimension(ColGender, ""),
		},
	}
}

// ProspectiveSchema describes the prospective-graduate survey.
func ProspectiveSchema(file string) schema.Config {
	support := schema.DefaultDimension(ColSupport, "Type of Support")
	support.MultiSelect = true
	return schema.Config{
		Name: "Prospective graduates",
		File: file,
		Dimensions: []schema.DimensionMeta{
			schema.DefaultDimension(ColCareer, "Career Path"),
			support,
		},
	}
}
