package client

type Status string

const (
	StatusLead      Status = "lead"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusInactive  Status = "inactive"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusLead, StatusActive, StatusCompleted, StatusInactive:
		return true
	default:
		return false
	}
}

type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "pending"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectReview     ProjectStatus = "review"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPending, ProjectInProgress, ProjectReview, ProjectCompleted, ProjectCancelled:
		return true
	default:
		return false
	}
}

type CommunicationType string

const (
	CommCall    CommunicationType = "call"
	CommEmail   CommunicationType = "email"
	CommMeeting CommunicationType = "meeting"
	CommNote    CommunicationType = "note"
)

func (t CommunicationType) IsValid() bool {
	switch t {
	case CommCall, CommEmail, CommMeeting, CommNote:
		return true
	default:
		return false
	}
}

const SourceWebsiteBooking = "website_booking"
