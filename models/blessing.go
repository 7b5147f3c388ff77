package models

// BlessingMessageMaxLen tebrik mesajı için karakter sınırı (trim sonrası).
const BlessingMessageMaxLen = 500

// Blessing tebrik defterine yazılan bir mesajı temsil eder.
// Yaşam döngüsü: misafir gönderimiyle oluşturulur; yalnızca IsApproved alanı
// moderasyon tarafından değiştirilebilir; silinmez.
type Blessing struct {
	BaseModel
	Name       string `gorm:"type:varchar(150);not null" json:"name"`
	Message    string `gorm:"type:varchar(500);not null" json:"message"`
	IsApproved bool   `gorm:"default:true;index" json:"is_approved"`
}
