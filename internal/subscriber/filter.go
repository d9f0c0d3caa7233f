package subscriber

import (
	"github.com/pantrifi/pipeline/internal/artifact"
	"github.com/pantrifi/pipeline/internal/domain"
)

// maxSourcesPerKind caps how many sheets, CSVs, and menus one user
// contributes to a cycle. Keeps a single pathological account from
// dominating a run's model budget.
const maxSourcesPerKind = 3

// Filter reduces fetched users to the ones eligible for analysis:
// those with at least one usable inventory source (a linked sheet or an
// uploaded CSV). Menus alone do not qualify. URLs are cleaned before a
// source counts, so a row whose URL cleans down to nothing does not
// make its user eligible. Each kind is capped. Subscription status was
// already enforced when the fetch step selected its input.
func Filter(users []domain.SubscribedUser) []domain.EligibleUser {
	var out []domain.EligibleUser
	for _, u := range users {
		var sheetURLs []string
		for _, sheet := range u.GoogleSheets {
			if url := artifact.CleanURL(sheet.SheetURL); url != "" {
				sheetURLs = append(sheetURLs, url)
			}
		}
		csvFiles := cleanFiles(u.CSVFiles)

		if len(sheetURLs) == 0 && len(csvFiles) == 0 {
			continue
		}

		out = append(out, domain.EligibleUser{
			UserID:          u.UserID,
			Name:            u.Name,
			Email:           u.Email,
			GoogleSheetURLs: capSlice(sheetURLs),
			CSVFileURLs:     capSlice(csvFiles),
			MenuFileURLs:    capSlice(cleanFiles(u.MenuFiles)),
		})
	}

	return out
}

func capSlice[T any](s []T) []T {
	if len(s) > maxSourcesPerKind {
		return s[:maxSourcesPerKind]
	}
	return s
}

// cleanFiles normalizes upload URLs, dropping rows whose URL cleans
// down to nothing.
func cleanFiles(files []domain.UploadedFile) []domain.UploadedFile {
	var out []domain.UploadedFile
	for _, f := range files {
		url := artifact.CleanURL(f.FileURL)
		if url == "" {
			continue
		}
		out = append(out, domain.UploadedFile{
			FileName: f.FileName,
			FileURL:  url,
		})
	}
	return out
}
