package models

// Attendance bir LCV yanıtının katılım durumunu tanımlar.
type Attendance string

const (
	AttendanceAttending    Attendance = "attending"     // Katılacak
	AttendanceNotAttending Attendance = "not_attending" // Katılmayacak
)

// Valid katılım değerinin izin verilen iki değerden biri olup olmadığını söyler.
func (a Attendance) Valid() bool {
	return a == AttendanceAttending || a == AttendanceNotAttending
}

// RSVP bir misafirin katılım yanıtını temsil eder.
// Kayıt bir kez oluşturulur; hiçbir tanımlı işlem tarafından güncellenmez veya silinmez.
type RSVP struct {
	BaseModel
	Name       string     `gorm:"type:varchar(150);not null" json:"name"`
	GuestCount int        `gorm:"type:integer;not null;check:guest_count IN (1,2)" json:"guest_count"`
	Attendance Attendance `gorm:"type:varchar(20);not null;index" json:"attendance"`
}
