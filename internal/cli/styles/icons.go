package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconVersion = "\uf02b" // tag
	IconGo      = "\ue627" // go gopher
	IconGithub  = "\uf09b" // github

	IconSession      = "\uf2d2" // window
	IconSessionStack = "\uf24d" // clone/stack
	IconTab          = "\uf0ce" // table
	IconGroup        = "\uf247" // object-group
	IconClock        = "\uf017" // clock
	IconRestore      = "\uf0e2" // rotate-left
	IconCamera       = "\uf030" // camera (capture)
	IconTemplate     = "\uf0c5" // copy
	IconIncognito    = "\uf21b" // user-secret
	IconPin          = "\uf08d" // thumb-tack
	IconServer       = "\uf233" // server
	IconCursor       = "\uf054" // chevron-right
)
