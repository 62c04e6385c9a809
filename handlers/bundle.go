// File: handlers/bundle.go
package handlers

import (
	adminSvc "pitchside/services/admin"
	bookingSvc "pitchside/services/booking"
	coachSvc "pitchside/services/coach"
	contentSvc "pitchside/services/content"
	storageSvc "pitchside/services/storage"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration has a single dependency.
type HandlerBundle struct {
	Booking *BookingHandler
	Coach   *CoachHandler
	Content *ContentHandler
	Admin   *AdminHandler
	Upload  *UploadHandler
}

// NewHandlerBundle wires the handlers onto their services.
func NewHandlerBundle(
	booking bookingSvc.BookingService,
	coach coachSvc.CoachService,
	content contentSvc.ContentService,
	admin adminSvc.AdminService,
	storage storageSvc.StorageService,
) *HandlerBundle {
	return &HandlerBundle{
		Booking: &BookingHandler{Service: booking},
		Coach:   &CoachHandler{Service: coach},
		Content: &ContentHandler{Service: content},
		Admin:   &AdminHandler{Service: admin},
		Upload:  &UploadHandler{Storage: storage},
	}
}
