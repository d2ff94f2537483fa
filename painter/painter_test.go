package painter

import (
	"testing"

	"github.com/nestshade/nestshade/background"
	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/host"
	"github.com/nestshade/nestshade/host/hosttest"
	"github.com/nestshade/nestshade/policy"
	"github.com/nestshade/nestshade/registry"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func lines(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "x"
	}
	return out
}

func setup(options policy.Options) (*hosttest.Fake, *Painter, *registry.Registry, host.Buffer) {
	fake := hosttest.New()
	pol := policy.New(options, background.New(fake), fake)
	reg := registry.New(fake)
	buf := fake.OpenBuffer(lines(20))
	return fake, New(fake, pol, reg, DefaultPriority), reg, buf
}

var palette = policy.Options{
	Enabled: true,
	Palette: []color.Hex{"#111111", "#222222", "#333333"},
}

func TestInterior(t *testing.T) {
	Convey("Interior spans", t, func() {
		from, to, ok := Interior(3, 7)
		So(ok, ShouldBeTrue)
		So(from, ShouldEqual, 3)
		So(to, ShouldEqual, 6)

		_, _, ok = Interior(5, 6)
		So(ok, ShouldBeFalse)
	})
}

func TestPaint(t *testing.T) {
	Convey("Given a painter over a palette", t, func() {
		fake, p, _, buf := setup(palette)

		Convey("The interior lines of a region are marked", func() {
			p.Paint(buf, 3, 7, 2)

			marks := fake.Marks(buf)
			So(marks, ShouldHaveLength, 1)
			So(marks[0].Start, ShouldEqual, 3)
			So(marks[0].End, ShouldEqual, 6)
			So(marks[0].Mark, ShouldResemble, host.Mark{StyleName: "NestshadeLevel2", Priority: DefaultPriority})
			So(fake.BackgroundAt(buf, 4).MustGet(), ShouldEqual, color.Hex("#222222"))
			So(fake.BackgroundAt(buf, 2).IsAbsent(), ShouldBeTrue)
			So(fake.BackgroundAt(buf, 6).IsAbsent(), ShouldBeTrue)
		})

		Convey("Regions without interior lines are skipped", func() {
			p.Paint(buf, 5, 5, 1)
			p.Paint(buf, 6, 5, 1)
			p.Paint(buf, 5, 6, 1)
			So(fake.MarkCalls, ShouldEqual, 0)
			So(fake.Defines, ShouldResemble, []string{"NestshadeLevel1"})
		})

		Convey("Styles are shared between regions of the same level", func() {
			p.Paint(buf, 1, 4, 1)
			p.Paint(buf, 6, 10, 1)
			p.Paint(buf, 11, 15, 4)
			So(fake.Defines, ShouldHaveLength, 2)
			So(fake.MarkCalls, ShouldEqual, 3)
		})

		Convey("Mark failures are swallowed", func() {
			fake.FailMark = true
			So(func() { p.Paint(buf, 1, 4, 1) }, ShouldNotPanic)
			So(fake.Marks(buf), ShouldBeEmpty)

			fake.FailMark = false
			fake.PanicOnMark = true
			So(func() { p.Paint(buf, 1, 4, 1) }, ShouldNotPanic)
		})

		Convey("Ranges past the buffer end do not abort painting", func() {
			p.Paint(buf, 30, 40, 1)
			p.Paint(buf, 1, 4, 1)
			So(fake.Marks(buf), ShouldHaveLength, 1)
		})

		Convey("A failed style definition paints nothing", func() {
			fake.FailDefine = true
			p.Paint(buf, 1, 4, 1)
			So(fake.MarkCalls, ShouldEqual, 0)
		})

		Convey("A missing namespace paints nothing", func() {
			fake.FailNamespace = true
			p.Paint(buf, 1, 4, 1)
			So(fake.MarkCalls, ShouldEqual, 0)

			fake.FailNamespace = false
			p.Paint(buf, 1, 4, 1)
			So(fake.MarkCalls, ShouldEqual, 1)
		})

		Convey("The configured priority is used", func() {
			p.SetPriority(3)
			p.Paint(buf, 1, 4, 1)
			So(fake.Marks(buf)[0].Mark.Priority, ShouldEqual, 3)
		})
	})

	Convey("Given highlighting is disabled", t, func() {
		fake, p, _, buf := setup(policy.Options{Enabled: false, Palette: palette.Palette})

		Convey("Painting touches nothing", func() {
			for level := 1; level < 10; level++ {
				p.Paint(buf, 1, 10, level)
			}
			So(fake.Mutations(), ShouldEqual, 0)
		})
	})
}

func TestPaintHostPanics(t *testing.T) {
	Convey("Given an editor whose style queries panic", t, func() {
		fake, p, _, buf := setup(policy.Options{Enabled: true, Generation: policy.DefaultGeneration})
		fake.PanicOnStyle = true

		Convey("Painting derives from the preference default instead of panicking", func() {
			So(func() { p.Paint(buf, 1, 4, 1) }, ShouldNotPanic)
			So(fake.Marks(buf), ShouldHaveLength, 1)
			So(fake.Defines, ShouldResemble, []string{"NestshadeLevel1"})
		})
	})
}

func TestClear(t *testing.T) {
	Convey("Given painted regions", t, func() {
		fake, p, reg, buf := setup(palette)
		other, _ := fake.CreateNamespace("diagnostics")
		So(fake.MarkLines(buf, other, 0, 1, host.Mark{StyleName: "Error"}), ShouldBeNil)

		p.Paint(buf, 1, 5, 1)
		p.Paint(buf, 2, 4, 2)
		So(reg.Len(), ShouldEqual, 2)

		Convey("Clear removes only this painter's marks", func() {
			p.Clear(buf)
			marks := fake.Marks(buf)
			So(marks, ShouldHaveLength, 1)
			So(marks[0].Namespace, ShouldEqual, other)
		})

		Convey("Clear empties the style cache", func() {
			p.Clear(buf)
			So(reg.Len(), ShouldEqual, 0)

			defines := len(fake.Defines)
			reg.Ensure(1, mo.Some[color.Hex]("#111111"))
			So(fake.Defines, ShouldHaveLength, defines+1)
		})

		Convey("Clear failures still reset the cache", func() {
			fake.FailClear = true
			So(func() { p.Clear(buf) }, ShouldNotPanic)
			So(reg.Len(), ShouldEqual, 0)
		})
	})
}
