package model_test

import (
	"testing"

	"github.com/apexfit/fitscore/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseGender(t *testing.T) {
	Convey("Given free-form gender input", t, func() {
		Convey("Then recognized values should map to their enum", func() {
			So(model.ParseGender("Female"), ShouldEqual, model.Female)
			So(model.ParseGender("f"), ShouldEqual, model.Female)
			So(model.ParseGender("male"), ShouldEqual, model.Male)
			So(model.ParseGender("Unspecified"), ShouldEqual, model.Unspecified)
			So(model.ParseGender(""), ShouldEqual, model.Unspecified)
		})

		Convey("Then unrecognized values should fall back to Male", func() {
			So(model.ParseGender("nonbinary"), ShouldEqual, model.Male)
			So(model.ParseGender("???"), ShouldEqual, model.Male)
		})
	})
}

func TestParsePushUpType(t *testing.T) {
	Convey("Given free-form push-up type input", t, func() {
		So(model.ParsePushUpType("modified"), ShouldEqual, model.PushUpModified)
		So(model.ParsePushUpType("WALL"), ShouldEqual, model.PushUpWall)
		So(model.ParsePushUpType("standard"), ShouldEqual, model.PushUpStandard)

		Convey("Then unrecognized or empty values should fall back to standard", func() {
			So(model.ParsePushUpType(""), ShouldEqual, model.PushUpStandard)
			So(model.ParsePushUpType("kneeling"), ShouldEqual, model.PushUpStandard)
		})
	})
}

func TestParseEnvironment(t *testing.T) {
	Convey("Given free-form environment input", t, func() {
		So(model.ParseEnvironment("outdoor"), ShouldEqual, model.EnvOutdoor)
		So(model.ParseEnvironment("Outdoor"), ShouldEqual, model.EnvOutdoor)
		So(model.ParseEnvironment("indoor"), ShouldEqual, model.EnvIndoor)
		So(model.ParseEnvironment(""), ShouldEqual, model.EnvIndoor)
		So(model.ParseEnvironment("gym"), ShouldEqual, model.EnvIndoor)
	})
}

func TestParseConditions(t *testing.T) {
	Convey("Given free-form conditions input", t, func() {
		So(model.ParseConditions("eyes_closed"), ShouldEqual, model.EyesClosed)
		So(model.ParseConditions("closed"), ShouldEqual, model.EyesClosed)
		So(model.ParseConditions("eyes_open"), ShouldEqual, model.EyesOpen)

		Convey("Then unrecognized values should fall back to eyes open", func() {
			So(model.ParseConditions(""), ShouldEqual, model.EyesOpen)
			So(model.ParseConditions("blindfolded"), ShouldEqual, model.EyesOpen)
		})
	})
}
