package models

// Relationship is one co-occurring partner of a target parameter.
type Relationship struct {
	Param    string   `json:"param" yaml:"param"`
	Count    int      `json:"count" yaml:"count"`
	AutoTags []string `json:"auto_tags" yaml:"auto_tags"`
}
