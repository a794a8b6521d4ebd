package export

import "github.com/psu-edu/sweng861-crud-jzt5803/deck"

// PPTExportService handles PowerPoint generation using GoPPT (pure Go,
// zero dependencies)
type PPTExportService struct {
	service *GoPPTService
}

// NewPPTExportService creates a new PPT export service
func NewPPTExportService() *PPTExportService {
	return &PPTExportService{
		service: NewGoPPTService(),
	}
}

// Export renders the deck to PowerPoint format
func (s *PPTExportService) Export(d deck.Deck) ([]byte, error) {
	return s.service.Export(d)
}
