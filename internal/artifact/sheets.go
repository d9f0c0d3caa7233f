package artifact

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var sheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)

// SheetExportURL rewrites a Google Sheets document URL into its CSV
// export form. The sheet tab (gid) is preserved when the source URL
// carries one, defaulting to the first tab otherwise.
func SheetExportURL(raw string) (string, error) {
	cleaned := CleanURL(raw)

	u, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotSheetURL, err)
	}
	if !strings.HasSuffix(u.Host, "docs.google.com") {
		return "", fmt.Errorf("%w: host %q", ErrNotSheetURL, u.Host)
	}

	m := sheetIDPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return "", fmt.Errorf("%w: no document id in %q", ErrNotSheetURL, u.Path)
	}

	gid := "0"
	if v := sheetGID(u); v != "" {
		gid = v
	}

	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", m[1], gid), nil
}

// sheetGID extracts the tab identifier from either the query string or
// the fragment ("#gid=123"), where the Sheets UI puts it.
func sheetGID(u *url.URL) string {
	if v := u.Query().Get("gid"); v != "" {
		return v
	}
	frag := strings.TrimPrefix(u.Fragment, "gid=")
	if frag != u.Fragment {
		return frag
	}
	return ""
}

// CleanURL strips the backticks and surrounding whitespace that sheet
// links picked up in stored records. Links are pasted into a rich-text
// field, so stray markdown quoting is common.
func CleanURL(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, "`", ""))
}
