package apierrors

const (
	MsgUnauthorized          = "unauthorized"
	MsgInvalidID             = "invalidID"
	MsgInvalidTaskPayload    = "invalidTaskPayload"
	MsgInvalidTaskQuery      = "invalidTaskQuery"
	MsgInvalidProjectPayload = "invalidProjectPayload"
	MsgTaskNotFound          = "taskNotFound"
	MsgProjectNotFound       = "projectNotFound"
	MsgFailListTasks         = "failListTasks"
	MsgFailGetTask           = "failGetTask"
	MsgFailCreateTask        = "failCreateTask"
	MsgFailUpdateTask        = "failUpdateTask"
	MsgFailDeleteTask        = "failDeleteTask"
	MsgFailListProjects      = "failListProjects"
	MsgFailGetProject        = "failGetProject"
	MsgFailCreateProject     = "failCreateProject"
	MsgFailUpdateProject     = "failUpdateProject"
	MsgFailDeleteProject     = "failDeleteProject"
	MsgFailDashboard         = "failDashboard"
)

// Per-field validation messages.
const (
	MsgFieldRequired      = "fieldRequired"
	MsgFieldTooLong       = "fieldTooLong"
	MsgFieldInvalid       = "fieldInvalid"
	MsgFieldInvalidDate   = "fieldInvalidDate"
	MsgFieldInvalidFilter = "fieldInvalidFilter"
	MsgFieldInvalidPage   = "fieldInvalidPage"
)
