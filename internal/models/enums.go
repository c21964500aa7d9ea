package models

// SessionDay is the weekday a client's regular appointment falls on.
type SessionDay string

const (
	Monday    SessionDay = "Monday"
	Tuesday   SessionDay = "Tuesday"
	Wednesday SessionDay = "Wednesday"
	Thursday  SessionDay = "Thursday"
	Friday    SessionDay = "Friday"
	Saturday  SessionDay = "Saturday"
	Sunday    SessionDay = "Sunday"
)

// SessionDays lists every valid weekday value.
func SessionDays() []SessionDay {
	return []SessionDay{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Valid reports whether d is a member of the weekday domain.
func (d SessionDay) Valid() bool {
	for _, v := range SessionDays() {
		if d == v {
			return true
		}
	}
	return false
}

// Outcome records the overall result of a closed case.
type Outcome string

const (
	OutcomeImproved        Outcome = "Improved"
	OutcomeNoChange        Outcome = "NoChange"
	OutcomeDeclined        Outcome = "Declined"
	OutcomeDataUnavailable Outcome = "DataUnavailable"
)

func Outcomes() []Outcome {
	return []Outcome{OutcomeImproved, OutcomeNoChange, OutcomeDeclined, OutcomeDataUnavailable}
}

func (o Outcome) Valid() bool {
	for _, v := range Outcomes() {
		if o == v {
			return true
		}
	}
	return false
}

// SessionStatus tracks whether a session happened as planned.
type SessionStatus string

const (
	StatusScheduled   SessionStatus = "Scheduled"
	StatusAttended    SessionStatus = "Attended"
	StatusDNA         SessionStatus = "DNA"
	StatusCancelled   SessionStatus = "Cancelled"
	StatusRescheduled SessionStatus = "Rescheduled"
)

func SessionStatuses() []SessionStatus {
	return []SessionStatus{StatusScheduled, StatusAttended, StatusDNA, StatusCancelled, StatusRescheduled}
}

func (s SessionStatus) Valid() bool {
	for _, v := range SessionStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// SessionType describes who the session was held with.
type SessionType string

const (
	TypeAssessmentChild        SessionType = "AssessmentChild"
	TypeAssessmentParentFamily SessionType = "AssessmentParentFamily"
	TypeChild                  SessionType = "Child"
	TypeParent                 SessionType = "Parent"
	TypeFamily                 SessionType = "Family"
	TypeCheckIn                SessionType = "CheckIn"
	TypeProfessionalsMeeting   SessionType = "ProfessionalsMeeting"
	TypeOther                  SessionType = "Other"
)

func SessionTypes() []SessionType {
	return []SessionType{
		TypeAssessmentChild, TypeAssessmentParentFamily, TypeChild, TypeParent,
		TypeFamily, TypeCheckIn, TypeProfessionalsMeeting, TypeOther,
	}
}

func (t SessionType) Valid() bool {
	for _, v := range SessionTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// DeliveryMethod is how the session was delivered.
type DeliveryMethod string

const (
	DeliveryFaceToFace DeliveryMethod = "FaceToFace"
	DeliveryOnline     DeliveryMethod = "Online"
	DeliveryTelephone  DeliveryMethod = "Telephone"
	DeliveryEmail      DeliveryMethod = "Email"
)

func DeliveryMethods() []DeliveryMethod {
	return []DeliveryMethod{DeliveryFaceToFace, DeliveryOnline, DeliveryTelephone, DeliveryEmail}
}

func (m DeliveryMethod) Valid() bool {
	for _, v := range DeliveryMethods() {
		if m == v {
			return true
		}
	}
	return false
}

// MissedReason explains why a session did not go ahead as attended.
type MissedReason string

const (
	MissedIllness          MissedReason = "Illness"
	MissedHoliday          MissedReason = "Holiday"
	MissedExamPeriod       MissedReason = "ExamPeriod"
	MissedAnnualLeave      MissedReason = "AnnualLeave"
	MissedSchoolTransition MissedReason = "SchoolTransition"
	MissedNoShow           MissedReason = "NoShow"
	MissedOther            MissedReason = "Other"
)

func MissedReasons() []MissedReason {
	return []MissedReason{
		MissedIllness, MissedHoliday, MissedExamPeriod, MissedAnnualLeave,
		MissedSchoolTransition, MissedNoShow, MissedOther,
	}
}

func (r MissedReason) Valid() bool {
	for _, v := range MissedReasons() {
		if r == v {
			return true
		}
	}
	return false
}
