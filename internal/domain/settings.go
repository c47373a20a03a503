package domain

// AppSettings is the process-wide configuration singleton read by the
// result-submission path.
type AppSettings struct {
	ScreenshotUploadEnabled bool `json:"screenshotUploadEnabled"`
	ManualEntryEnabled      bool `json:"manualEntryEnabled"`
	AutoVerifyResults       bool `json:"autoVerifyResults"`
}

// DefaultSettings is used when the Settings table is missing or unreadable.
func DefaultSettings() AppSettings {
	return AppSettings{
		ScreenshotUploadEnabled: true,
		ManualEntryEnabled:      true,
		AutoVerifyResults:       false,
	}
}
