package site

import (
	"errors"
	"io/fs"

	"github.com/sase-site/sitegen/internal/event"
	"github.com/sase-site/sitegen/internal/logger"
	"github.com/sase-site/sitegen/internal/page"
	"github.com/sase-site/sitegen/internal/render"
	"github.com/sase-site/sitegen/internal/storage"
)

// UpdateGallery renders past events grouped by year and semester, each card
// with a carousel of the pictures in the event's folder.
func (g *Generator) UpdateGallery() (Result, error) {
	return g.update(gallerySpec, func(doc *page.Document) (int, error) {
		table, err := g.loadTable(g.cfg.Data.Gallery)
		if err != nil {
			return 0, err
		}

		events, err := event.GalleryFromTable(table)
		if err != nil {
			return 0, err
		}

		groups := event.GroupGallery(events)
		rows := render.Gallery(groups, g.album)

		if err := doc.SetBody(RegionGallery, "\n"+rows+"\n"); err != nil {
			return 0, err
		}

		cards := 0
		for _, grp := range groups {
			cards += len(grp.Events)
		}
		return cards, nil
	})
}

// album lists the pictures of one gallery event. An event without a folder,
// or with no pictures in it, shows the fallback image instead.
func (g *Generator) album(eventName string) render.Album {
	folder := g.cfg.Images.GalleryDir + "/" + eventName

	files, err := storage.ListImages(g.cfg.Path(folder))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		g.log.Warn("Could not list event pictures", logger.Fields{"event": eventName, "folder": folder, "error": err.Error()})
	}
	if len(files) == 0 {
		return render.Album{
			Folder: g.cfg.Images.FallbackDir,
			Files:  []string{g.cfg.Images.FallbackImage},
		}
	}

	return render.Album{Folder: folder, Files: files}
}
