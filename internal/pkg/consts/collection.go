package consts

const (
	ServicesCollection = "Services"
	RequestsCollection = "Requests"
	MembersCollection  = "Members"
)
