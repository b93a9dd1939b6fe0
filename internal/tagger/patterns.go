package tagger

// TagRule maps a category label to the lower-case substrings that trigger it.
type TagRule struct {
	Label    string
	Patterns []string
}

// Category labels of the default table.
const (
	TagFileUpload    = "File Upload"
	TagIDOR          = "IDOR"
	TagXSS           = "XSS"
	TagSQLi          = "SQLi"
	TagAuth          = "Auth"
	TagRedirect      = "Redirect"
	TagPathTraversal = "Path Traversal"
	TagAdmin         = "Admin"
	TagDebug         = "Debug"
)

// DefaultRules is the built-in name heuristic table. Order is significant:
// classification results follow it.
var DefaultRules = []TagRule{
	{Label: TagFileUpload, Patterns: []string{"file", "upload", "document", "doc", "attachment", "image", "photo", "pdf"}},
	{Label: TagIDOR, Patterns: []string{"id", "user", "account", "profile", "uid", "userid", "accountid"}},
	{Label: TagXSS, Patterns: []string{"search", "query", "q", "keyword", "message", "comment", "text", "content"}},
	{Label: TagSQLi, Patterns: []string{"id", "sort", "order", "filter", "category", "type"}},
	{Label: TagAuth, Patterns: []string{"token", "session", "auth", "key", "api", "secret", "password", "login"}},
	{Label: TagRedirect, Patterns: []string{"redirect", "url", "return", "next", "callback", "continue", "returnurl"}},
	{Label: TagPathTraversal, Patterns: []string{"path", "dir", "folder", "directory", "file", "filename"}},
	{Label: TagAdmin, Patterns: []string{"admin", "role", "privilege", "permission", "access", "level"}},
	{Label: TagDebug, Patterns: []string{"debug", "test", "dev", "trace", "verbose", "log"}},
}
