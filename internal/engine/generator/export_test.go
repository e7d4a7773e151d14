package generator

import "go.trai.ch/fileslist/internal/core/domain"

// RenderUnsigned renders the artifact for job before signing. A nil style renders it raw.
func RenderUnsigned(job domain.Job, files domain.FileList, style *domain.Style) (string, error) {
	tmpl := templateFor(&job)
	if style == nil {
		return renderRaw(tmpl, files)
	}
	return renderStyled(tmpl, files, style)
}

// Quote exposes string literal quoting.
func Quote(s string, preferSingle bool) (string, error) {
	return quote(s, preferSingle)
}
