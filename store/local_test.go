package store

import (
	"context"
	"testing"

	"github.com/panoshell/panoshell/constant"
	"github.com/panoshell/panoshell/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestFileLocalStorage(t *testing.T) {
	Convey("Given a file-backed local storage", t, func() {
		filesystem.SetMemMapFs()
		ls := NewFileLocalStorage("/cache/localstorage.json")

		Convey("Missing items are absent", func() {
			item, err := ls.GetItem("nope")
			So(err, ShouldBeNil)
			So(item.IsAbsent(), ShouldBeTrue)
		})

		Convey("Items round trip", func() {
			So(ls.SetItem("a", "1"), ShouldBeNil)
			So(ls.SetItem("b", "2"), ShouldBeNil)
			item, err := ls.GetItem("a")
			So(err, ShouldBeNil)
			So(item.MustGet(), ShouldEqual, "1")
		})

		Convey("A corrupt file reports an error on read", func() {
			So(filesystem.API().WriteFile("/cache/localstorage.json", []byte("{"), 0o644), ShouldBeNil)
			_, err := ls.GetItem("a")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLocalBackend(t *testing.T) {
	Convey("Given the local fallback backend", t, func() {
		ctx := context.Background()
		filesystem.SetMemMapFs()
		path := "/cache/localstorage.json"
		backend := NewLocalBackend(NewFileLocalStorage(path), constant.RootNamespace)

		Convey("It stores the root as JSON under the namespace key", func() {
			So(backend.Save(ctx, Root{page: {"k": "v"}}), ShouldBeNil)
			item, err := NewFileLocalStorage(path).GetItem(constant.RootNamespace)
			So(err, ShouldBeNil)
			So(item.MustGet(), ShouldEqual, `{"https://example.com/tour":{"k":"v"}}`)

			root, err := backend.Load(ctx)
			So(err, ShouldBeNil)
			So(root[page], ShouldResemble, Bucket{"k": "v"})
		})

		Convey("Malformed shapes read as empty", func() {
			ls := NewFileLocalStorage(path)
			So(ls.SetItem(constant.RootNamespace, `[1,2,3]`), ShouldBeNil)
			root, err := backend.Load(ctx)
			So(err, ShouldBeNil)
			So(root, ShouldBeEmpty)

			So(ls.SetItem(constant.RootNamespace, `{"`+page+`": "oops"}`), ShouldBeNil)
			root, err = backend.Load(ctx)
			So(err, ShouldBeNil)
			So(root[page], ShouldResemble, Bucket{})
		})

		Convey("Read failures look empty", func() {
			So(filesystem.API().WriteFile(path, []byte("garbage"), 0o644), ShouldBeNil)
			root, err := backend.Load(ctx)
			So(err, ShouldBeNil)
			So(root, ShouldBeEmpty)
		})

		Convey("Write failures are swallowed", func() {
			filesystem.SetFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			defer filesystem.SetMemMapFs()

			So(backend.Save(ctx, Root{page: {"k": "v"}}), ShouldBeNil)

			s := New(backend, page)
			s.SetKey(ctx, "k", "v")
			So(s.Bucket(ctx), ShouldResemble, Bucket{"k": "v"})
		})
	})
}

func TestExtensionBackend(t *testing.T) {
	Convey("Given the extension backend", t, func() {
		ctx := context.Background()
		filesystem.SetMemMapFs()
		backend := NewExtensionBackend("/config/storage", constant.RootNamespace)

		Convey("An empty store loads an empty root", func() {
			root, err := backend.Load(ctx)
			So(err, ShouldBeNil)
			So(root, ShouldBeEmpty)
		})

		Convey("Saved roots survive a new backend instance", func() {
			So(backend.Save(ctx, Root{page: {"open:drawer": true}}), ShouldBeNil)

			fresh := NewExtensionBackend("/config/storage", constant.RootNamespace)
			root, err := fresh.Load(ctx)
			So(err, ShouldBeNil)
			So(root[page], ShouldResemble, Bucket{"open:drawer": true})
		})

		Convey("Namespaces map to portable file names", func() {
			So(fileName("panoshell:buckets"), ShouldEqual, "panoshell_buckets.json")
		})
	})
}

func TestSelectBackend(t *testing.T) {
	Convey("SelectBackend", t, func() {
		opts := BackendOptions{
			Namespace:  constant.RootNamespace,
			StorageDir: "/config/storage",
			LocalPath:  "/cache/localstorage.json",
		}

		Convey("Forced modes are honoured", func() {
			filesystem.SetMemMapFs()
			opts.Mode = BackendLocal
			So(SelectBackend(opts).Name(), ShouldEqual, "local")
			opts.Mode = BackendExtension
			So(SelectBackend(opts).Name(), ShouldEqual, "extension")
		})

		Convey("Auto prefers extension storage", func() {
			filesystem.SetMemMapFs()
			opts.Mode = BackendAuto
			So(SelectBackend(opts).Name(), ShouldEqual, "extension")
		})

		Convey("Auto falls back to local when extension storage is unusable", func() {
			filesystem.SetFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			defer filesystem.SetMemMapFs()
			opts.Mode = BackendAuto
			So(SelectBackend(opts).Name(), ShouldEqual, "local")
		})

		Convey("Modes parse case-insensitively", func() {
			mode, err := ParseBackendMode("LOCAL")
			So(err, ShouldBeNil)
			So(mode, ShouldEqual, BackendLocal)
			_, err = ParseBackendMode("cloud")
			So(err, ShouldNotBeNil)
		})
	})
}
