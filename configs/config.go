package configs

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"dugun.link/configs/configsdatabase"
	"dugun.link/configs/configslog"

	"github.com/gofiber/fiber/v2/middleware/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BankAccount hediye bölümünde gösterilen banka hesabı bilgisi.
type BankAccount struct {
	Bank   string `json:"bank"`
	Holder string `json:"holder"`
	Number string `json:"number"`
}

// Config uygulamanın tüm ortam ayarlarını taşır.
// Görünümler render sırasında bu yapıyı açıkça alır; global dil durumu yoktur.
type Config struct {
	AppEnv string
	Port   string

	// Gerçek zamanlı taşıma. Boşsa süreç içi hub kullanılır.
	NATSURL string

	// Yönetim paneli girişi için bcrypt hash. ADMIN_PASSWORD_HASH boşsa
	// ADMIN_PASSWORD'dan açılışta türetilir.
	AdminPasswordHash string

	// Tebrik mesajı oluşturma politikası (bkz. BLESSING_AUTO_APPROVE).
	BlessingAutoApprove bool

	// Gerçek zamanlı katman REALTIME_ENABLED=false ile tamamen kapatılabilir.
	RealtimeEnabled bool

	// Varsayılan dil çalışma anında panelden değiştirilebildiği için
	// erişim Locale/SetLocale üzerinden kilitlidir.
	localeMu      sync.RWMutex
	defaultLocale string

	// Düğün meta verisi.
	BrideName    string
	GroomName    string
	EventDate    time.Time
	VenueName    string
	VenueMapURL  string
	BankAccounts []BankAccount
}

var app *Config

// LoadConfig ortam değişkenlerinden yapılandırmayı okur ve saklar.
// godotenv.Load çağrısı main'de yapılır; burada yalnızca os.Getenv okunur.
func LoadConfig() *Config {
	cfg := &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "3000"),
		NATSURL:             os.Getenv("NATS_URL"),
		AdminPasswordHash:   os.Getenv("ADMIN_PASSWORD_HASH"),
		BlessingAutoApprove: getEnvBool("BLESSING_AUTO_APPROVE", true),
		RealtimeEnabled:     getEnvBool("REALTIME_ENABLED", true),
		defaultLocale:       getEnv("DEFAULT_LOCALE", "id"),
		BrideName:           getEnv("BRIDE_NAME", "Gelin"),
		GroomName:           getEnv("GROOM_NAME", "Damat"),
		VenueName:           getEnv("VENUE_NAME", ""),
		VenueMapURL:         getEnv("VENUE_MAP_URL", ""),
		BankAccounts:        parseBankAccounts(os.Getenv("BANK_ACCOUNTS")),
	}

	if raw := os.Getenv("EVENT_DATE"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			cfg.EventDate = t
		} else {
			configslog.SLog.Warnf("EVENT_DATE parse edilemedi (%q), boş bırakılıyor.", raw)
		}
	}

	if cfg.AdminPasswordHash == "" {
		if pw := os.Getenv("ADMIN_PASSWORD"); pw != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
			if err == nil {
				cfg.AdminPasswordHash = string(hash)
			} else {
				configslog.SLog.Errorf("ADMIN_PASSWORD hash'lenemedi: %v", err)
			}
		}
	}

	app = cfg
	return cfg
}

// App yüklü yapılandırmayı döner; LoadConfig çağrılmamışsa varsayılanlarla yükler.
func App() *Config {
	if app == nil {
		return LoadConfig()
	}
	return app
}

// Locale geçerli varsayılan dili döner.
func (c *Config) Locale() string {
	c.localeMu.RLock()
	defer c.localeMu.RUnlock()
	return c.defaultLocale
}

// SetLocale varsayılan dili değiştirir. Eşzamanlı render'larla yarışmaz.
func (c *Config) SetLocale(locale string) {
	c.localeMu.Lock()
	c.defaultLocale = locale
	c.localeMu.Unlock()
}

// GetDB aktif veritabanı bağlantısını döner (configsdatabase'e delege eder).
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

var sessionStore *session.Store

// SetupSession oturum deposunu (bellek tabanlı) bir kez kurar ve döner.
func SetupSession() *session.Store {
	if sessionStore == nil {
		sessionStore = session.New(session.Config{
			Expiration:     12 * time.Hour,
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		})
	}
	return sessionStore
}

// GetSessionStore kurulu oturum deposunu döner.
func GetSessionStore() *session.Store {
	return SetupSession()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// parseBankAccounts "Banka|Hesap Sahibi|IBAN;Banka2|..." biçimini çözer.
func parseBankAccounts(raw string) []BankAccount {
	if raw == "" {
		return nil
	}
	var accounts []BankAccount
	for _, entry := range strings.Split(raw, ";") {
		parts := strings.Split(strings.TrimSpace(entry), "|")
		if len(parts) != 3 {
			continue
		}
		accounts = append(accounts, BankAccount{
			Bank:   strings.TrimSpace(parts[0]),
			Holder: strings.TrimSpace(parts[1]),
			Number: strings.TrimSpace(parts[2]),
		})
	}
	return accounts
}
