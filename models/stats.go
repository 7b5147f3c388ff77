package models

// Stats LCV kayıtları üzerinden hesaplanan katılım özetidir.
// Hiçbir zaman persist edilmez; her istekte tam kümeden yeniden hesaplanır.
type Stats struct {
	TotalResponses        int `json:"total_responses"`
	TotalGuests           int `json:"total_guests"`
	AttendingResponses    int `json:"attending_responses"`
	AttendingGuests       int `json:"attending_guests"`
	NotAttendingResponses int `json:"not_attending_responses"`
	NotAttendingGuests    int `json:"not_attending_guests"`
}
