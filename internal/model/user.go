package model

// NotificationType keys the per-user opt-out map.
type NotificationType string

const (
	NotificationQuestAssigned NotificationType = "questAssigned"
	NotificationDeadline      NotificationType = "deadline"
	NotificationDailySummary  NotificationType = "dailySummary"
)

type User struct {
	ID string
	// FCMTokens is the active device token set. FCMToken is the legacy
	// single-device field still present on older user documents.
	FCMTokens []string
	FCMToken  *string
	// NotificationSetting maps a notification type to an opt-in flag.
	// A missing key means enabled; only an explicit false opts out.
	NotificationSetting map[string]bool
	BadgeCount          int
	TimeZone            string
}

// Allows reports whether the user accepts notifications of the given type.
func (u *User) Allows(t NotificationType) bool {
	if u.NotificationSetting == nil {
		return true
	}
	enabled, ok := u.NotificationSetting[string(t)]
	return !ok || enabled
}

// DeviceTokens resolves the token set, falling back to the legacy field.
func (u *User) DeviceTokens() []string {
	if len(u.FCMTokens) > 0 {
		return u.FCMTokens
	}
	if u.FCMToken != nil && *u.FCMToken != "" {
		return []string{*u.FCMToken}
	}
	return nil
}
