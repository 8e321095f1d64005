package card

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	c := Card{
		Category:    "Electronics",
		Title:       "Mechanical Keyboard",
		Description: "Clicky.",
		Price:       "$99.99",
		Match:       "80.0%",
	}
	actual := Render(c, 60)
	for _, expected := range []string{"ELECTRONICS", "Match: 80.0%", "Mechanical Keyboard", "Clicky.", "$99.99"} {
		if !strings.Contains(actual, expected) {
			t.Errorf("expected output to contain %q, got:\n%s", expected, actual)
		}
	}
}

func TestRenderWithoutMatchHasNoBadge(t *testing.T) {
	actual := Render(Card{Category: "Product", Title: "Mouse", Description: DefaultDescription, Price: DefaultPrice}, 60)
	if strings.Contains(actual, "Match:") {
		t.Errorf("unexpected match badge in:\n%s", actual)
	}
}

func TestRenderListKeepsOrder(t *testing.T) {
	cards := []Card{
		{Category: "Product", Title: "First", Description: "a", Price: "N/A"},
		{Category: "Product", Title: "Second", Description: "b", Price: "N/A"},
		{Category: "Product", Title: "Third", Description: "c", Price: "N/A"},
	}
	actual := RenderList(cards, 40)
	first, second, third := strings.Index(actual, "First"), strings.Index(actual, "Second"), strings.Index(actual, "Third")
	if first < 0 || second < 0 || third < 0 {
		t.Fatalf("missing cards in:\n%s", actual)
	}
	if !(first < second && second < third) {
		t.Errorf("cards out of order:\n%s", actual)
	}
}
