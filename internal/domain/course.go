package domain

// Course is a catalog entry for one department, number and term.
// Immutable once retrieved.
type Course struct {
	Code        string `json:"code"`
	Dept        string `json:"dept"`
	Term        TermID `json:"term"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Units       int    `json:"units"`
}

// Section is one scheduled lecture instance of a course. Only
// lecture-type meeting records survive ingest; labs and discussions are
// dropped at the source.
type Section struct {
	ID               string   `json:"id"`
	Code             string   `json:"code"`
	Dept             string   `json:"dept"`
	Term             TermID   `json:"term"`
	Title            string   `json:"title"`
	Instructor       string   `json:"instructor"`
	Location         string   `json:"location"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	Days             []string `json:"day"`
	SpacesAvailable  int      `json:"spaces_available"`
	NumberRegistered int      `json:"number_registered"`
	Units            int      `json:"units"`
}

// SpacesLeft is recomputed on every read; the stored seat counts are a
// snapshot from the last retrieval and never treated as authoritative.
func (s Section) SpacesLeft() int {
	return s.SpacesAvailable - s.NumberRegistered
}

// Event is a calendar-ready record handed to the visualization
// renderer.
type Event struct {
	Label     string   `json:"label"`
	StartHour float64  `json:"start_hour"`
	EndHour   float64  `json:"end_hour"`
	Days      []string `json:"day"`
	Hover     string   `json:"hover"`
}

// Directory maps department codes to their full names for one term.
type Directory map[string]string

// Statistics summarizes a full warm run over the department directory.
type Statistics struct {
	Term        TermID
	Departments int
	Courses     int
	Sections    int
	Failures    int
}
