package entity

// Aggregate is the composite of one Project plus its optional related
// records, treated as one unit for validation and creation. Only the
// Project is mandatory; nil members are simply not written.
type Aggregate struct {
	Project   *Project
	Customer  *Customer
	Site      *Site
	Building  *Building
	Financial *Financial
	Schedule  *Schedule
}
