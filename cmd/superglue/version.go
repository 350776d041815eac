package main

import (
	"fmt"
	"io"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func printVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, `superglue version %s (commit %s, built %s)
Copyright 2021 Mitchell Levy
superglue is free software, licensed under the AGPLv3.
You should have received a copy of the GNU Affero General Public License along with superglue.  If not, see <https://www.gnu.org/licenses/>.
`, version, commit, date)
	return err
}
