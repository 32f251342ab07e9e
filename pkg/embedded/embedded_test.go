package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

// resetState 重置包级状态，避免测试之间互相影响
func resetState(t *testing.T) {
	t.Helper()
	dataFS = nil
	initialized = false
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetState(t)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	resetState(t)

	_, err := ReadFile("data/menu.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() before Init(): got %v, want ErrNotInitialized", err)
	}
}

// TestReadFile 测试读取嵌入文件及路径标准化
func TestReadFile(t *testing.T) {
	resetState(t)

	Init(fstest.MapFS{
		"data/menu.yaml": &fstest.MapFile{Data: []byte("window: {}")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/menu.yaml", false},
		{"带 ./ 前缀", "./data/menu.yaml", false},
		{"文件不存在", "data/missing.yaml", true},
		{"非法前缀", "assets/menu.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != "window: {}" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}
}
