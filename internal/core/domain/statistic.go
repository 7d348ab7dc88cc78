package domain

// DiagramRow is one bar of the users-per-department diagram.
type DiagramRow struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	Users          int64  `json:"users"`
}

// HeaderCounts are the totals shown in the statistics header.
type HeaderCounts struct {
	Users       int64 `json:"users"`
	Departments int64 `json:"departments"`
	Projects    int64 `json:"projects"`
}
