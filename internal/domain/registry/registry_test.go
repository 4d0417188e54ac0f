package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/quantfold/fedgauge/internal/domain/classifier"
	"github.com/quantfold/fedgauge/internal/domain/model"
	"github.com/quantfold/fedgauge/internal/domain/roster"
	"github.com/quantfold/fedgauge/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	logger.Init()
}

// failingBackend errors on every call.
type failingBackend struct{}

func (failingBackend) ClassifyText(context.Context, string) (classifier.Result, error) {
	return classifier.Result{}, errors.New("boom")
}

func (failingBackend) ClassifyTextWithEvidence(context.Context, string) (classifier.Result, []classifier.QuoteEvidence, error) {
	return classifier.Result{}, nil, errors.New("boom")
}

func (failingBackend) ClassifySnippets(context.Context, []string) (classifier.Result, error) {
	return classifier.Result{}, errors.New("boom")
}

// fixedBackend returns a canned score on every call.
type fixedBackend struct{ score float64 }

func (b fixedBackend) ClassifyText(context.Context, string) (classifier.Result, error) {
	return classifier.Result{Score: b.score}, nil
}

func (b fixedBackend) ClassifyTextWithEvidence(context.Context, string) (classifier.Result, []classifier.QuoteEvidence, error) {
	return classifier.Result{Score: b.score}, nil, nil
}

func (b fixedBackend) ClassifySnippets(context.Context, []string) (classifier.Result, error) {
	return classifier.Result{Score: b.score}, nil
}

func TestClassifierRegistry(t *testing.T) {
	Convey("Given a registry with two backends", t, func() {
		reg := NewClassifierRegistry()
		reg.Register("first", fixedBackend{1}, true)
		reg.Register("second", fixedBackend{2}, false)

		Convey("Then List preserves registration order and enabled flags", func() {
			regs := reg.List()
			So(regs, ShouldHaveLength, 2)
			So(regs[0], ShouldResemble, Registration{Name: "first", Enabled: true})
			So(regs[1], ShouldResemble, Registration{Name: "second", Enabled: false})
		})

		Convey("When a backend is enabled and disabled", func() {
			So(reg.Enable("second"), ShouldBeNil)
			So(reg.Disable("first"), ShouldBeNil)

			regs := reg.List()
			So(regs[0].Enabled, ShouldBeFalse)
			So(regs[1].Enabled, ShouldBeTrue)
		})

		Convey("When an unknown name is toggled", func() {
			So(errors.Is(reg.Enable("ghost"), ErrUnknownBackend), ShouldBeTrue)
			So(errors.Is(reg.Disable("ghost"), ErrUnknownBackend), ShouldBeTrue)
		})
	})
}

func TestRouterFallthrough(t *testing.T) {
	Convey("Given a router with a failing backend ahead of a healthy one", t, func() {
		ctx := context.Background()
		reg := NewClassifierRegistry()
		reg.Register("broken", failingBackend{}, true)
		reg.Register("healthy", fixedBackend{2.5}, true)
		router := NewRouter(reg, classifier.New())

		Convey("Then the failure is absorbed and the next backend answers", func() {
			result := router.ClassifyText(ctx, "anything")
			So(result.Score, ShouldEqual, 2.5)

			batch := router.ClassifySnippets(ctx, []string{"a", "b"})
			So(batch.Score, ShouldEqual, 2.5)
		})
	})

	Convey("Given a router where every registered backend fails", t, func() {
		ctx := context.Background()
		reg := NewClassifierRegistry()
		reg.Register("broken", failingBackend{}, true)
		router := NewRouter(reg, classifier.New())

		Convey("Then the keyword terminal still produces a result", func() {
			result := router.ClassifyText(ctx, "Officials signaled a rate hike.")
			So(result.Score, ShouldBeGreaterThan, 0)

			_, evidence := router.ClassifyTextWithEvidence(ctx, "Officials signaled a rate hike.")
			So(evidence, ShouldNotBeEmpty)
		})
	})

	Convey("Given a router with a disabled backend", t, func() {
		ctx := context.Background()
		reg := NewClassifierRegistry()
		reg.Register("ignored", fixedBackend{4}, false)
		router := NewRouter(reg, classifier.New())

		Convey("Then routing goes straight to the keyword terminal", func() {
			result := router.ClassifyText(ctx, "nothing notable")
			So(result.Score, ShouldEqual, 0)
			So(result.Label, ShouldEqual, model.LabelNeutral)
		})
	})
}

func TestSemanticProbeGating(t *testing.T) {
	Convey("Given a semantic probe gated on an environment key", t, func() {
		ctx := context.Background()
		built := 0
		factory := func() (Backend, error) {
			built++
			return fixedBackend{3}, nil
		}
		newRouter := func() *Router {
			return NewRouter(NewClassifierRegistry(), classifier.New(),
				WithSemanticBackend("semantic", "FEDGAUGE_TEST_SEMANTIC_KEY", factory))
		}

		Convey("When the key is unset the probe never builds", func() {
			t.Setenv("FEDGAUGE_TEST_SEMANTIC_KEY", "")
			result := newRouter().ClassifyText(ctx, "anything")
			So(result.Score, ShouldEqual, 0)
			So(built, ShouldEqual, 0)
		})

		Convey("When the key is set the probe builds once and answers", func() {
			t.Setenv("FEDGAUGE_TEST_SEMANTIC_KEY", "enabled")
			router := newRouter()
			So(router.ClassifyText(ctx, "anything").Score, ShouldEqual, 3)
			So(router.ClassifyText(ctx, "again").Score, ShouldEqual, 3)
			So(built, ShouldEqual, 1)
		})

		Convey("When the factory fails the router falls through", func() {
			t.Setenv("FEDGAUGE_TEST_SEMANTIC_KEY", "enabled")
			router := NewRouter(NewClassifierRegistry(), classifier.New(),
				WithSemanticBackend("semantic", "FEDGAUGE_TEST_SEMANTIC_KEY", func() (Backend, error) {
					return nil, errors.New("no credentials")
				}))
			result := router.ClassifyText(ctx, "nothing notable")
			So(result.Score, ShouldEqual, 0)
			So(result.Label, ShouldEqual, model.LabelNeutral)
		})
	})
}

func TestKeywordBackend(t *testing.T) {
	Convey("Given the keyword classifier wrapped as a backend", t, func() {
		ctx := context.Background()
		b := NewKeywordBackend(classifier.New())

		result, err := b.ClassifyText(ctx, "Officials signaled a rate hike.")
		So(err, ShouldBeNil)
		So(result.Score, ShouldBeGreaterThan, 0)

		_, evidence, err := b.ClassifyTextWithEvidence(ctx, "Officials signaled a rate hike.")
		So(err, ShouldBeNil)
		So(evidence, ShouldNotBeEmpty)

		batch, err := b.ClassifySnippets(ctx, nil)
		So(err, ShouldBeNil)
		So(batch.SnippetCount, ShouldEqual, 0)
	})
}

func TestSourceRouterFetchAll(t *testing.T) {
	Convey("Given sources that succeed, fail, and overlap by URL", t, func() {
		ctx := context.Background()
		p := roster.Participant{Name: "Jerome H. Powell"}

		reg := NewSourceRegistry()
		reg.Register("alpha", func(context.Context, roster.Participant, int) ([]model.NewsItem, error) {
			return []model.NewsItem{
				{Title: "one", URL: "https://example.com/1"},
				{Title: "two", URL: "https://example.com/2"},
			}, nil
		}, true)
		reg.Register("broken", func(context.Context, roster.Participant, int) ([]model.NewsItem, error) {
			return nil, errors.New("timeout")
		}, true)
		reg.Register("beta", func(context.Context, roster.Participant, int) ([]model.NewsItem, error) {
			return []model.NewsItem{
				{Title: "dup", URL: "https://example.com/1"},
				{Title: "three", URL: "https://example.com/3"},
			}, nil
		}, true)
		reg.Register("off", func(context.Context, roster.Participant, int) ([]model.NewsItem, error) {
			return []model.NewsItem{{Title: "never", URL: "https://example.com/4"}}, nil
		}, false)

		router := NewSourceRouter(reg)

		Convey("Then failures and disabled sources are skipped and URLs deduped", func() {
			items := router.FetchAll(ctx, p, 5)
			So(items, ShouldHaveLength, 3)
			So(items[0].Title, ShouldEqual, "one")
			So(items[1].Title, ShouldEqual, "two")
			So(items[2].Title, ShouldEqual, "three")
		})
	})
}
