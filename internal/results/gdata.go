package results

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

// OpenGdata opens the per-user data store for appName. Items live in the
// platform's application data directory.
func OpenGdata(appName string) (Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open data store %q: %w", appName, err)
	}
	return m, nil
}
