package courses

import (
	"testing"
	"time"

	"vipcourses/models"
)

func TestFilterCoursesMatchesTitleDescriptionCategory(t *testing.T) {
	courseList := []models.Course{
		{CourseID: "c1", Title: "HSC Physics", Category: "Academic"},
		{CourseID: "c2", Title: "Admission English", Description: "university admission prep"},
		{CourseID: "c3", Title: "Cooking", Category: "Hobby"},
	}

	got := filterCourses(courseList, "ADMISSION")
	if len(got) != 1 || got[0].CourseID != "c2" {
		t.Fatalf("expected only c2, got %+v", got)
	}

	got = filterCourses(courseList, "academic")
	if len(got) != 1 || got[0].CourseID != "c1" {
		t.Fatalf("expected only c1, got %+v", got)
	}

	if got := filterCourses(courseList, "  "); len(got) != 3 {
		t.Fatalf("blank query should keep all courses, got %d", len(got))
	}
}

func TestSortCourses(t *testing.T) {
	now := time.Now()
	courseList := []models.Course{
		{CourseID: "b", Title: "Beta", CreatedAt: now},
		{CourseID: "a", Title: "alpha", CreatedAt: now.Add(-time.Hour)},
	}

	sortCourses(courseList, "title")
	if courseList[0].CourseID != "a" {
		t.Fatalf("title sort: expected alpha first, got %s", courseList[0].Title)
	}

	sortCourses(courseList, "oldest")
	if courseList[0].CourseID != "a" {
		t.Fatalf("oldest sort: expected a first, got %s", courseList[0].CourseID)
	}
}
