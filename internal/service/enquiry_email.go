package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/ssinteriors/backend/internal/model"
)

// istLocation is the timezone the submission timestamp is rendered in.
var istLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}()

// enquirySubject templates the notification subject from the submitter's
// name, verbatim.
func enquirySubject(enq *model.Enquiry) string {
	return fmt.Sprintf("New Interior Design Enquiry - %s", enq.Name)
}

// enquiryBody renders the notification HTML. Field values are
// interpolated literally (no entity escaping) so each appears in the
// body exactly as submitted. The house-type line is included only for
// residential projects that named one; empty optional fields render
// their display defaults.
func enquiryBody(enq *model.Enquiry, submittedAt time.Time) string {
	var b strings.Builder

	b.WriteString("<h2>New Enquiry from SS Interiors Website</h2>\n")
	b.WriteString("<div style=\"background: #f5f5f5; padding: 20px; border-radius: 10px;\">\n")

	b.WriteString("<h3>Contact Information:</h3>\n")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", enq.Name)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", enq.Email)
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>\n", enq.Phone)

	b.WriteString("<h3>Project Details:</h3>\n")
	fmt.Fprintf(&b, "<p><strong>Project Type:</strong> %s</p>\n", enq.ProjectType)
	if enq.ProjectType == "residential" && enq.HouseType != "" {
		fmt.Fprintf(&b, "<p><strong>House Type:</strong> %s</p>\n", enq.HouseType)
	}
	fmt.Fprintf(&b, "<p><strong>Budget:</strong> %s</p>\n", enq.Budget.OrDefault(model.NotSpecified))
	fmt.Fprintf(&b, "<p><strong>Location:</strong> %s</p>\n", enq.Location)
	fmt.Fprintf(&b, "<p><strong>Timeline:</strong> %s</p>\n", enq.Timeline.OrDefault(model.NotSpecified))

	b.WriteString("<h3>Description:</h3>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", enq.Description.OrDefault(model.NoDetailsProvided))

	b.WriteString("<hr>\n")
	fmt.Fprintf(&b, "<p><em>Submitted on: %s</em></p>\n",
		submittedAt.In(istLocation).Format("2/1/2006, 3:04:05 pm"))
	b.WriteString("</div>")

	return b.String()
}
