package runner

import (
	"github.com/projectdiscovery/gologger"

	"github.com/mickeyl/lanagent/pkg/version"
)

const banner = `
    __    ___    _   __                       __
   / /   /   |  / | / /___ _____ ____  ____  / /_
  / /   / /| | /  |/ / __ '/ __ '/ _ \/ __ \/ __/
 / /___/ ___ |/ /|  / /_/ / /_/ /  __/ / / / /_
/_____/_/  |_/_/ |_/\__,_/\__, /\___/_/ /_/\__/
                         /____/
`

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\t\t\t%s\n\n", au.Cyan(banner).String(), au.BrightYellow(version.Version).String())
}
