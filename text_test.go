package deptscrape_test

import (
	"testing"

	"github.com/fwojciec/deptscrape"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("strips zero-width and invisible characters", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Cardiology", deptscrape.Normalize("Car\u200bdio\u200dlogy\ufeff"))
	})

	t.Run("replaces non-breaking spaces with regular spaces", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Heart Centre", deptscrape.Normalize("Heart\u00a0Centre"))
	})

	t.Run("collapses whitespace runs including newlines and tabs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a b c", deptscrape.Normalize("a \n\t b \r\n  c"))
	})

	t.Run("trims leading and trailing whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "x", deptscrape.Normalize("  x  "))
	})

	t.Run("empty string maps to empty string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", deptscrape.Normalize(""))
		assert.Equal(t, "", deptscrape.Normalize(" \u200b \n "))
	})
}

func TestWordCount(t *testing.T) {
	t.Parallel()

	t.Run("zero iff normalized text is empty", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, deptscrape.WordCount(""))
		assert.Zero(t, deptscrape.WordCount(deptscrape.Normalize(" \u200b ")))
		assert.NotZero(t, deptscrape.WordCount("one"))
	})

	t.Run("counts whitespace-separated tokens", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 4, deptscrape.WordCount("the heart centre team"))
	})
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	t.Run("drops unsafe characters and replaces spaces", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Ear_Nose_and_Throat", deptscrape.SanitizeFilename(`Ear Nose "and" Throat?`))
	})

	t.Run("empty title yields placeholder", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "page", deptscrape.SanitizeFilename(""))
		assert.Equal(t, "page", deptscrape.SanitizeFilename(". "))
	})

	t.Run("caps length at 100 characters", func(t *testing.T) {
		t.Parallel()

		long := make([]byte, 0, 150)
		for i := 0; i < 150; i++ {
			long = append(long, 'a')
		}
		assert.Len(t, deptscrape.SanitizeFilename(string(long)), 100)
	})
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and hyphenates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "heart-lung-centre", deptscrape.Slugify("Heart & Lung Centre", 90))
	})

	t.Run("caps at max length without trailing hyphen", func(t *testing.T) {
		t.Parallel()

		got := deptscrape.Slugify("alpha beta gamma", 10)
		assert.Equal(t, "alpha-beta", got)
	})

	t.Run("returns empty when nothing usable remains", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", deptscrape.Slugify("!!!", 90))
	})
}
