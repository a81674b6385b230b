package utils

// SessionTracker ist der Redis-Eintrag einer aktiven Anmeldesitzung.
// Der Eintrag wird beim Login geschrieben und beim Logout gelöscht.
type SessionTracker struct {
	JTI     string
	UserID  string
	Role    string
	Token   string
	LoginAt string
}
