package cmd

import "testing"

func TestColorForScore(t *testing.T) {
	// SprintFuncs are compared by behavior on a known severity boundary.
	if colorForScore(85)("x") != colorSuccess("x") {
		t.Error("high scores should use the success color")
	}
	if colorForScore(60)("x") != colorWarn("x") {
		t.Error("middling scores should use the warning color")
	}
	if colorForScore(10)("x") != colorError("x") {
		t.Error("low scores should use the error color")
	}
}

func TestColorForGrade(t *testing.T) {
	if colorForGrade("A+")("x") != colorSuccess("x") {
		t.Error("A+ should use the success color")
	}
	if colorForGrade("C")("x") != colorWarn("x") {
		t.Error("C should use the warning color")
	}
	if colorForGrade("F")("x") != colorError("x") {
		t.Error("F should use the error color")
	}
}
