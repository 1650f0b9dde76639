package dsi

// Display Command Set (from the MIPI DCS specification).
const (
	DCSNop              = 0x00
	DCSSoftReset        = 0x01
	DCSGetPowerMode     = 0x0A
	DCSGetAddressMode   = 0x0B
	DCSGetPixelFormat   = 0x0C
	DCSGetDisplayMode   = 0x0D
	DCSGetSignalMode    = 0x0E
	DCSEnterSleepMode   = 0x10
	DCSExitSleepMode    = 0x11
	DCSEnterPartialMode = 0x12
	DCSEnterNormalMode  = 0x13
	DCSExitInvertMode   = 0x20
	DCSEnterInvertMode  = 0x21
	DCSSetDisplayOff    = 0x28
	DCSSetDisplayOn     = 0x29
	DCSSetColumnAddress = 0x2A
	DCSSetPageAddress   = 0x2B
	DCSWriteMemoryStart = 0x2C
	DCSReadMemoryStart  = 0x2E
	DCSSetTearOff       = 0x34
	DCSSetTearOn        = 0x35
	DCSSetAddressMode   = 0x36
	DCSSetScrollStart   = 0x37
	DCSExitIdleMode     = 0x38
	DCSEnterIdleMode    = 0x39
	DCSSetPixelFormat   = 0x3A
	DCSSetTearScanline  = 0x44
)

// TearMode selects when the tearing-effect signal fires.
type TearMode byte

const (
	// TearModeVBlank fires at the vertical blanking boundary only.
	TearModeVBlank TearMode = 0x00

	// TearModeVHBlank fires at both vertical and horizontal blanking.
	TearModeVHBlank TearMode = 0x01
)
