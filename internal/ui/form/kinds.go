package form

// Field positions of the bookmark form.
const (
	BookmarkTitle = iota
	BookmarkURL
)

// NewBookmark returns the title/url form.
func NewBookmark() *Form {
	return New("bookmark",
		map[Mode]string{ModeNew: "Add Bookmark", ModeEdit: "Edit Bookmark"},
		FieldSpec{Label: "Title"},
		FieldSpec{Label: "URL"},
	)
}

// Field positions of the schedule form.
const (
	ScheduleSummary = iota
	ScheduleStart
	ScheduleEnd
	ScheduleDescription
)

// NewSchedule returns the summary/start/end/description form.
func NewSchedule() *Form {
	return New("schedule",
		map[Mode]string{ModeNew: "Add Schedule", ModeEdit: "Edit Schedule"},
		FieldSpec{Label: "Summary"},
		FieldSpec{Label: "Start"},
		FieldSpec{Label: "End"},
		FieldSpec{Label: "Description", Fill: true},
	)
}

// Field positions of the task form.
const (
	TaskTitle = iota
	TaskNotes
	TaskDue
)

// NewTask returns the title/notes/due form.
func NewTask() *Form {
	return New("task",
		map[Mode]string{ModeNew: "Add Task", ModeEdit: "Edit Task"},
		FieldSpec{Label: "Title"},
		FieldSpec{Label: "Notes", Fill: true},
		FieldSpec{Label: "Due"},
	)
}
