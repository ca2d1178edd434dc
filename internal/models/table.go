package models

// TableRef addresses a warehouse table as project.dataset.table.
type TableRef struct {
	ProjectID string
	DatasetID string
	TableName string
}

// String returns the fully qualified table name.
func (t TableRef) String() string {
	return t.ProjectID + "." + t.DatasetID + "." + t.TableName
}
