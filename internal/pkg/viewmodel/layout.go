package viewmodel

// Layout carries the values every rendered page needs.
type Layout struct {
	Page      string
	Title     string
	IsError   bool
	Msg       string
	AppDomain string
}
