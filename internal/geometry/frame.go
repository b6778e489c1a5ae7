package geometry

// BarHeight returns the full height of a bar: the configured base height
// grown by padding above and below.
func BarHeight(baseHeight, padding float64) float64 {
	return baseHeight + padding*2
}

// BaseOffset returns the y coordinate of the first stacked bar:
// the parent's origin, below the status bar and any navigation chrome.
func BaseOffset(parentY, statusBar, navBar float64) float64 {
	return parentY + statusBar + navBar
}

// BarWidth returns the configured width, or the parent width when unset.
func BarWidth(configured float64, parent Rect) float64 {
	if configured > 0 {
		return configured
	}
	return parent.W
}

// StartFrame returns the off-screen frame a bar is created with: directly
// above the base offset, hidden behind the chrome.
func StartFrame(x, base, width, height float64) Rect {
	return Rect{X: x, Y: base - height, W: width, H: height}
}

// RestingOffset returns the settled y of a bar stacked below bars of the
// given heights.
func RestingOffset(base float64, heights ...float64) float64 {
	y := base
	for _, h := range heights {
		y += h
	}
	return y
}

// ContentLayout positions the pieces of a bar relative to the bar's origin.
type ContentLayout struct {
	Image    Rect
	HasImage bool
	Title    Rect
	Body     Rect
	HasBody  bool
}

// LayoutContent lays out the image, title and body of a bar of the given
// size. titleSize and bodySize are the measured text sizes.
//
// The image is a square inset by twice the padding. Text starts right of the
// image (or at the padding without one). Without a body the title box is
// stretched to fill the bar's vertical space.
func LayoutContent(bar Size, padding float64, hasImage bool, titleSize, bodySize Size, hasBody bool) ContentLayout {
	var l ContentLayout
	startX := padding

	if hasImage {
		imagePadding := padding * 2
		side := bar.H - imagePadding*2
		if side < 0 {
			side = 0
		}
		l.Image = Rect{X: imagePadding, Y: imagePadding, W: side, H: side}
		l.HasImage = true
		startX = side + imagePadding*2
	}

	l.Title = Rect{X: startX, Y: padding, W: titleSize.W, H: titleSize.H}

	if hasBody {
		l.Body = Rect{
			X: startX,
			Y: l.Title.Y + l.Title.H + padding,
			W: bodySize.W,
			H: bodySize.H,
		}
		l.HasBody = true
	} else {
		l.Title.H = bar.H - padding*2
	}

	return l
}
