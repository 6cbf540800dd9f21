package entities

// Singleton configuration rows. Each lives in its own table with a fixed
// primary key of 1 and is overwritten wholesale on save.

// Chat providers selectable in ModelConfig.
const (
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderBuiltin    = "builtin"
)

// ModelConfig selects the chat provider and its sampling parameters.
type ModelConfig struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	Provider    string  `json:"provider"`
	ModelID     string  `json:"model_id"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens"`
	Instruction string  `json:"instruction"`
}

// CompanyInfo is the branding shown inside the chat widget.
type CompanyInfo struct {
	ID             uint   `gorm:"primaryKey" json:"-"`
	Name           string `json:"name"`
	LogoURL        string `json:"logo_url"`
	WelcomeMessage string `json:"welcome_message"`
	PrimaryColor   string `json:"primary_color"`
	SupportEmail   string `json:"support_email"`
}

// PanelConfig is the branding of the admin dashboard itself.
type PanelConfig struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Title    string `json:"title"`
	Language string `json:"language"`
	LogoURL  string `json:"logo_url"`
	Footer   string `json:"footer"`
}

// SmtpConfig holds outgoing-mail settings. An update with an empty Password
// keeps the previously stored secret.
type SmtpConfig struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	From     string `json:"from"`
	UseTLS   bool   `json:"use_tls"`
}

// BackupSchedule describes the recurring export executed by the backup
// runner. Part matches the export parts of the backup API.
type BackupSchedule struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	Enabled       bool   `json:"enabled"`
	IntervalHours int    `json:"interval_hours"`
	Part          string `json:"part"`
	LastRunAt     string `json:"last_run_at"`
}

// GoogleDriveConfig is the simulated Drive target for scheduled exports.
// No upload is performed; the folder is recorded alongside local exports.
type GoogleDriveConfig struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	Enabled bool   `json:"enabled"`
	Folder  string `json:"folder"`
}
