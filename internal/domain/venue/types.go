package venue

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

type SportKind string

const (
	SportCricketBox SportKind = "cricket_box"
	SportFootball   SportKind = "football"
	SportBadminton  SportKind = "badminton"
	SportMultiSport SportKind = "multi_sport"
)

func (k SportKind) IsValid() bool {
	switch k {
	case SportCricketBox, SportFootball, SportBadminton, SportMultiSport:
		return true
	default:
		return false
	}
}
