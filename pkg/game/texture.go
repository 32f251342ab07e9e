package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"

	"github.com/h2non/filetype"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp" // Register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

var (
	// ErrTextureDecode 表示图片文件无法打开或解码
	ErrTextureDecode = errors.New("failed to load texture")
	// ErrUnsupportedImage 表示文件内容不是可识别的图片格式
	ErrUnsupportedImage = errors.New("unsupported image type")
)

// sniffLen 是 filetype 识别文件类型所需的最大头部长度
const sniffLen = 261

// PixelFormat 纹理上传时使用的像素格式
type PixelFormat int

const (
	// FormatRGB 三通道，不含 alpha，上传后所有像素不透明
	FormatRGB PixelFormat = iota
	// FormatRGBA 四通道，保留 alpha
	FormatRGBA
)

// String 返回像素格式名称
func (f PixelFormat) String() string {
	switch f {
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("PixelFormat(%d)", int(f))
	}
}

// UploadFormat 根据通道数选择上传格式
// 4 通道选择 RGBA，其余一律 RGB
func UploadFormat(channels int) PixelFormat {
	if channels == 4 {
		return FormatRGBA
	}
	return FormatRGB
}

// ChannelCount 返回解码后图片的通道数
//
// 返回值：
//   - 1: 灰度图
//   - 3: 不透明的彩色图
//   - 4: 含透明像素（或无法判断是否不透明）的彩色图
func ChannelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}

	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// DecodedImage 是解码后、上传到 GPU 之前的图片数据
type DecodedImage struct {
	Image    image.Image
	Format   string // 解码器名称，如 "png"、"jpeg"
	Width    int
	Height   int
	Channels int
}

// DecodeImage 从磁盘读取并解码图片
//
// 失败时返回的 error 消息即为可读的失败原因，并包装 ErrTextureDecode；
// 文件内容不是图片时同时包装 ErrUnsupportedImage。
func DecodeImage(path string) (*DecodedImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: can't open %s: %v", ErrTextureDecode, path, err)
	}
	defer file.Close()

	// 先识别文件类型，给出比 "unknown format" 更具体的原因
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: can't read %s: %v", ErrTextureDecode, path, err)
	}
	head = head[:n]

	if !filetype.IsImage(head) {
		mime := "unknown"
		if kind, _ := filetype.Match(head); kind != filetype.Unknown {
			mime = kind.MIME.Value
		}
		return nil, fmt.Errorf("%w: %w: %s is %s", ErrTextureDecode, ErrUnsupportedImage, path, mime)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: can't seek %s: %v", ErrTextureDecode, path, err)
	}

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: can't decode %s: %v", ErrTextureDecode, path, err)
	}

	bounds := img.Bounds()
	return &DecodedImage{
		Image:    img,
		Format:   format,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Channels: ChannelCount(img),
	}, nil
}

// toUploadImage 按上传格式转换像素数据
// RGB 格式会丢弃 alpha，所有像素变为不透明
func toUploadImage(src image.Image, format PixelFormat) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	if format == FormatRGB {
		// 先铺满黑色，再叠加源图，相当于把 alpha 合成到黑底上
		draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)
		return dst
	}

	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst
}

// Texture 是驻留在 GPU 上的纹理句柄
//
// nil *Texture 表示"没有纹理"（加载失败），所有方法都可以在 nil 上安全调用。
type Texture struct {
	image  *ebiten.Image
	format PixelFormat
	width  int
	height int
}

// NewTexture 将解码后的图片上传为纹理
// 通道数不是 3 或 4 的图片会记录警告并按 RGB 上传
func NewTexture(d *DecodedImage) *Texture {
	if d.Channels != 3 && d.Channels != 4 {
		log.Printf("[Texture] Warning: unhandled channel count %d, uploading as RGB", d.Channels)
	}

	format := UploadFormat(d.Channels)
	img := ebiten.NewImageFromImage(toUploadImage(d.Image, format))

	return &Texture{
		image:  img,
		format: format,
		width:  d.Width,
		height: d.Height,
	}
}

// LoadTexture 加载图片文件并创建纹理
//
// 参数：
//   - path: 图片路径（如 "logo.png"）
//
// 返回：
//   - *Texture: 纹理句柄；失败时为 nil（"没有纹理"）
//   - error: 失败原因
func LoadTexture(path string) (*Texture, error) {
	decoded, err := DecodeImage(path)
	if err != nil {
		log.Printf("[Texture] %v", err)
		return nil, err
	}

	tex := NewTexture(decoded)
	log.Printf("[Texture] Loaded %s (%s, %dx%d, %d channels, %s)",
		path, decoded.Format, decoded.Width, decoded.Height, decoded.Channels, tex.format)
	return tex, nil
}

// Valid 返回纹理是否可用
func (t *Texture) Valid() bool {
	return t != nil && t.image != nil
}

// Format 返回纹理上传时使用的像素格式
func (t *Texture) Format() PixelFormat {
	if t == nil {
		return FormatRGB
	}
	return t.format
}

// Size 返回纹理像素尺寸
func (t *Texture) Size() (int, int) {
	if t == nil {
		return 0, 0
	}
	return t.width, t.height
}

// DrawQuad 将整张纹理绘制到屏幕矩形 (x, y, w, h) 上
//
// 纹理坐标 (0,0) 对应矩形左上角，(1,1) 对应右下角。
// 采样使用线性过滤和重复寻址。
func (t *Texture) DrawQuad(dst *ebiten.Image, x, y, w, h float32) {
	if !t.Valid() {
		return
	}

	tw := float32(t.width)
	th := float32(t.height)
	vertex := func(dx, dy, sx, sy float32) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: dx, DstY: dy,
			SrcX: sx, SrcY: sy,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}

	vertices := []ebiten.Vertex{
		vertex(x, y, 0, 0),
		vertex(x+w, y, tw, 0),
		vertex(x+w, y+h, tw, th),
		vertex(x, y+h, 0, th),
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}

	op := &ebiten.DrawTrianglesOptions{
		Filter:  ebiten.FilterLinear,
		Address: ebiten.AddressRepeat,
	}
	dst.DrawTriangles(vertices, indices, t.image, op)
}

// Release 释放纹理占用的 GPU 资源
// 重复调用是安全的，只有第一次会真正释放
func (t *Texture) Release() {
	if !t.Valid() {
		return
	}
	t.image.Deallocate()
	t.image = nil
	log.Printf("[Texture] Released")
}
