package payments

import (
	"testing"

	"vipcourses/models"
)

func TestPurchasableDraftGate(t *testing.T) {
	draft := models.Course{CourseID: "c1", PublishStatus: "draft"}
	published := models.Course{CourseID: "c2", PublishStatus: "published"}

	if purchasable(draft, "user") {
		t.Fatal("draft course must not be purchasable by a regular user")
	}
	if purchasable(draft, "") {
		t.Fatal("draft course must not be purchasable without a role")
	}
	if !purchasable(draft, "admin") {
		t.Fatal("admin should be able to test-purchase a draft course")
	}
	if !purchasable(published, "user") {
		t.Fatal("published course must be purchasable")
	}
}
