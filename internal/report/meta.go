package report

// Meta is the free-text header of a voyage report. None of it takes part in
// any calculation.
type Meta struct {
	TugBoat string `yaml:"tug_boat" json:"tug_boat"`
	Barge   string `yaml:"barge" json:"barge"`
	POL     string `yaml:"pol" json:"pol"`
	POD     string `yaml:"pod" json:"pod"`
	Shipper string `yaml:"shipper" json:"shipper"`
	Laycan  string `yaml:"laycan" json:"laycan"`
}

// FileStem is a file name stem such as "Voyage_Report_TB Sinar 01".
func (m Meta) FileStem() string {
	name := m.TugBoat
	if name == "" {
		name = "vessel"
	}
	return "Voyage_Report_" + name
}
