package display

import (
	"fmt"
	"os"

	"github.com/backmassage/proresbatch/internal/term"
)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	banner := ` ____           ____              ____        _       _
|  _ \ _ __ ___|  _ \ ___  ___   | __ )  __ _| |_ ___| |__
| |_) | '__/ _ \ |_) / _ \/ __|  |  _ \ / _` + "`" + ` | __/ __| '_ \
|  __/| | | (_) |  _ <  __/\__ \ | |_) | (_| | || (__| | | |
|_|   |_|  \___/|_| \_\___||___/ |____/ \__,_|\__\___|_| |_|
`
	fmt.Fprint(os.Stdout, term.Magenta.Sprint(banner))
}
