package colors

// COLOR is an ANSI escape sequence that switches the terminal color.
type COLOR string

const (
	RESET       COLOR = "\033[0m"
	RED         COLOR = "\033[31m"
	GREEN       COLOR = "\033[32m"
	YELLOW      COLOR = "\033[33m"
	BLUE        COLOR = "\033[34m"
	PURPLE      COLOR = "\033[35m"
	CYAN        COLOR = "\033[36m"
	WHITE       COLOR = "\033[37m"
	GREY        COLOR = "\033[90m"
	BOLD        COLOR = "\033[1m"
	BOLD_RED    COLOR = "\033[1;31m"
	BOLD_GREEN  COLOR = "\033[1;32m"
	BOLD_YELLOW COLOR = "\033[1;33m"
	BOLD_BLUE   COLOR = "\033[1;34m"
	BOLD_WHITE  COLOR = "\033[1;37m"
	ORANGE      COLOR = "\033[38;5;208m"
)
