package models

type RequestStatus string

const (
	RequestStatusVacant     RequestStatus = "VACANT"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusHired      RequestStatus = "HIRED"
	RequestStatusCompleted  RequestStatus = "COMPLETED"
	RequestStatusCancelled  RequestStatus = "CANCELLED"
	RequestStatusSuspended  RequestStatus = "SUSPENDED"
)

var requestStatusHumanName = map[RequestStatus]string{
	RequestStatusVacant:     "Vacant",
	RequestStatusInProgress: "In progress",
	RequestStatusHired:      "Hired",
	RequestStatusCompleted:  "Completed",
	RequestStatusCancelled:  "Cancelled",
	RequestStatusSuspended:  "Suspended",
}

func (s RequestStatus) IsValid() bool {
	_, exist := requestStatusHumanName[s]
	return exist
}

func (s RequestStatus) ToHuman() string {
	if human, exist := requestStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// VacantStatuses are the request states shown on the vacant positions board.
var VacantStatuses = []RequestStatus{RequestStatusVacant, RequestStatusInProgress}

type CandidateStatus string

const (
	CandidateStatusReceived           CandidateStatus = "RECEIVED"
	CandidateStatusUnderReview        CandidateStatus = "UNDER_REVIEW"
	CandidateStatusShortlisted        CandidateStatus = "SHORTLISTED"
	CandidateStatusTechnicalInterview CandidateStatus = "TECHNICAL_INTERVIEW"
	CandidateStatusHRInterview        CandidateStatus = "HR_INTERVIEW"
	CandidateStatusSelected           CandidateStatus = "SELECTED"
	CandidateStatusOfferSent          CandidateStatus = "OFFER_SENT"
	CandidateStatusHired              CandidateStatus = "HIRED"
	CandidateStatusRejected           CandidateStatus = "REJECTED"
)

var candidateStatusHumanName = map[CandidateStatus]string{
	CandidateStatusReceived:           "Application received",
	CandidateStatusUnderReview:        "Under review",
	CandidateStatusShortlisted:        "Shortlisted",
	CandidateStatusTechnicalInterview: "Technical interview",
	CandidateStatusHRInterview:        "HR interview",
	CandidateStatusSelected:           "Selected",
	CandidateStatusOfferSent:          "Offer sent",
	CandidateStatusHired:              "Hired",
	CandidateStatusRejected:           "Rejected",
}

func (s CandidateStatus) IsValid() bool {
	_, exist := candidateStatusHumanName[s]
	return exist
}

func (s CandidateStatus) ToHuman() string {
	if human, exist := candidateStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type InterviewType string

const (
	InterviewTypeTechnical InterviewType = "TECHNICAL"
	InterviewTypeHR        InterviewType = "HR"
)

func (t InterviewType) IsValid() bool {
	return t == InterviewTypeTechnical || t == InterviewTypeHR
}

func (t InterviewType) ToHuman() string {
	switch t {
	case InterviewTypeTechnical:
		return "Technical"
	case InterviewTypeHR:
		return "HR"
	}
	return string(t)
}

type InterviewResult string

const (
	InterviewResultPending   InterviewResult = "PENDING"
	InterviewResultPassed    InterviewResult = "PASSED"
	InterviewResultFailed    InterviewResult = "FAILED"
	InterviewResultNoShow    InterviewResult = "NO_SHOW"
	InterviewResultCancelled InterviewResult = "CANCELLED"
)

var interviewResults = map[InterviewResult]bool{
	InterviewResultPending:   true,
	InterviewResultPassed:    true,
	InterviewResultFailed:    true,
	InterviewResultNoShow:    true,
	InterviewResultCancelled: true,
}

func (r InterviewResult) IsValid() bool {
	return interviewResults[r]
}

type NotificationType string

const (
	NotificationTypeRequestAssigned NotificationType = "REQUEST_ASSIGNED"
	NotificationTypeStatusChanged   NotificationType = "CANDIDATE_STATUS_CHANGED"
	NotificationTypeInterviewPlaned NotificationType = "INTERVIEW_SCHEDULED"
	NotificationTypeSystem          NotificationType = "SYSTEM"
)
