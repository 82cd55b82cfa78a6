package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"stooda/internal/question"
)

// imageReference matches the words a question uses to point at a
// figure. Questions that never mention one get no images attached.
var imageReference = regexp.MustCompile(`(?i)figura|imagem|gráfico|tabela|diagrama|ilustração|quadro|mapa|inf|chart`)

// pageImages maps a page number to the figures extracted from it.
type pageImages map[int][]question.ImageRef

// writeImages writes every embedded figure under outDir and returns
// per-page references plus the number of files written. File names are
// pag<page>_img<index>.<format>. A figure that fails to write is
// logged and skipped; figures without data are referenced but never
// written.
func writeImages(doc Document, outDir, dirName string, logger *zap.Logger) (pageImages, int, error) {
	images := pageImages{}
	written := 0

	hasData := false
	for _, page := range doc.Pages {
		for _, img := range page.Images {
			if len(img.Data) > 0 {
				hasData = true
			}
		}
	}
	targetDir := filepath.Join(outDir, dirName)
	if hasData {
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			return nil, 0, fmt.Errorf("create images dir: %w", err)
		}
	}

	for _, page := range doc.Pages {
		for index, img := range page.Images {
			filename := fmt.Sprintf("pag%d_img%d.%s", page.Number, index, img.Format)
			ref := question.ImageRef{
				File:   filename,
				Page:   page.Number,
				Format: img.Format,
			}
			if len(img.Data) > 0 {
				if err := os.WriteFile(filepath.Join(targetDir, filename), img.Data, 0o644); err != nil {
					logger.Warn("image write failed",
						zap.Int("page", page.Number),
						zap.Int("index", index),
						zap.Error(err))
					continue
				}
				ref.Path = filepath.Join(dirName, filename)
				written++
				logger.Debug("image written", zap.String("file", filename))
			}
			images[page.Number] = append(images[page.Number], ref)
		}
	}
	return images, written, nil
}

// associateImages picks the figures for one question: only questions
// that mention a figure get any, and they take every figure from the
// first page at or after their own that has one, within the lookahead,
// capped at maxPerQuestion.
func associateImages(body string, page int, images pageImages, lookahead, maxPerQuestion int) []question.ImageRef {
	if !imageReference.MatchString(body) {
		return nil
	}
	if page == 0 {
		return nil
	}
	var refs []question.ImageRef
	for offset := 0; offset < lookahead; offset++ {
		pageRefs := images[page+offset]
		if len(pageRefs) == 0 {
			continue
		}
		refs = append(refs, pageRefs...)
		break
	}
	if len(refs) > maxPerQuestion {
		refs = refs[:maxPerQuestion]
	}
	return refs
}
