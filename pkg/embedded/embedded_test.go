package embedded

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/level.yaml": {Data: []byte("world:\n  width: 800\n")},
	})
	t.Cleanup(func() { Init(nil) })

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "存在的文件", path: "data/level.yaml"},
		{name: "带 ./ 前缀", path: "./data/level.yaml"},
		{name: "不存在的文件", path: "data/missing.yaml", wantErr: true},
		{name: "未知前缀", path: "assets/level.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Error("expected file content")
			}
			if got := Exists(tt.path); got == tt.wantErr {
				t.Errorf("Exists(%q) = %v", tt.path, got)
			}
		})
	}
}

func TestNotInitialized(t *testing.T) {
	Init(nil)

	if IsInitialized() {
		t.Fatal("Init(nil) should leave the package uninitialized")
	}
	_, err := ReadFile("data/level.yaml")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("uninitialized ReadFile error = %v, want fs.ErrNotExist", err)
	}
	if Exists("data/level.yaml") {
		t.Error("Exists should be false before Init")
	}
}
