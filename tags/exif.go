package tags

// Well-known codes consulted by the consistency rules and the decoder
var (
	Make              = Code{IFD0, 0x010F}
	Model             = Code{IFD0, 0x0110}
	Orientation       = Code{IFD0, 0x0112}
	Software          = Code{IFD0, 0x0131}
	DateTime          = Code{IFD0, 0x0132}
	Artist            = Code{IFD0, 0x013B}
	Copyright         = Code{IFD0, 0x8298}
	ExifIFDPointer    = Code{IFD0, 0x8769}
	GPSInfoPointer    = Code{IFD0, 0x8825}
	ISOSpeedRatings   = Code{ExifIFD, 0x8827}
	DateTimeOriginal  = Code{ExifIFD, 0x9003}
	DateTimeDigitized = Code{ExifIFD, 0x9004}
	Flash             = Code{ExifIFD, 0x9209}
	MakerNote         = Code{ExifIFD, 0x927C}
	InteropPointer    = Code{ExifIFD, 0xA005}
	GPSLatitudeRef    = Code{GPSIFD, 0x0001}
	GPSLatitude       = Code{GPSIFD, 0x0002}
	GPSLongitudeRef   = Code{GPSIFD, 0x0003}
	GPSLongitude      = Code{GPSIFD, 0x0004}

	JPEGInterchangeFormat       = Code{IFD1, 0x0201}
	JPEGInterchangeFormatLength = Code{IFD1, 0x0202}
)

// Pointer tags open a nested directory instead of carrying a value
var Pointers = map[Code]IFD{
	ExifIFDPointer: ExifIFD,
	GPSInfoPointer: GPSIFD,
	InteropPointer: InteropIFD,
}

var (
	orientationValues = map[int]string{
		1: "Horizontal (normal)",
		2: "Mirrored horizontal",
		3: "Rotated 180",
		4: "Mirrored vertical",
		5: "Mirrored horizontal then rotated 90 CCW",
		6: "Rotated 90 CW",
		7: "Mirrored horizontal then rotated 90 CW",
		8: "Rotated 90 CCW",
	}
	resolutionUnitValues = map[int]string{
		1: "Not Absolute",
		2: "Pixels/Inch",
		3: "Pixels/Centimeter",
	}
	compressionValues = map[int]string{
		1: "Uncompressed",
		6: "JPEG (old-style)",
		7: "JPEG",
	}
	ycbcrPositioningValues = map[int]string{
		1: "Centered",
		2: "Co-sited",
	}
	flashValues = map[int]string{
		0x00: "Flash did not fire",
		0x01: "Flash fired",
		0x05: "Strobe return light not detected",
		0x07: "Strobe return light detected",
		0x09: "Flash fired, compulsory flash mode",
		0x0D: "Flash fired, compulsory flash mode, return light not detected",
		0x0F: "Flash fired, compulsory flash mode, return light detected",
		0x10: "Flash did not fire, compulsory flash mode",
		0x18: "Flash did not fire, auto mode",
		0x19: "Flash fired, auto mode",
		0x1D: "Flash fired, auto mode, return light not detected",
		0x1F: "Flash fired, auto mode, return light detected",
		0x20: "No flash function",
		0x41: "Flash fired, red-eye reduction mode",
		0x45: "Flash fired, red-eye reduction mode, return light not detected",
		0x47: "Flash fired, red-eye reduction mode, return light detected",
		0x49: "Flash fired, compulsory flash mode, red-eye reduction mode",
		0x59: "Flash fired, auto mode, red-eye reduction mode",
	}
	exposureProgramValues = map[int]string{
		0: "Unidentified",
		1: "Manual",
		2: "Program Normal",
		3: "Aperture Priority",
		4: "Shutter Priority",
		5: "Program Creative",
		6: "Program Action",
		7: "Portrait Mode",
		8: "Landscape Mode",
	}
	meteringModeValues = map[int]string{
		0:   "Unknown",
		1:   "Average",
		2:   "CenterWeightedAverage",
		3:   "Spot",
		4:   "MultiSpot",
		5:   "Pattern",
		6:   "Partial",
		255: "other",
	}
	lightSourceValues = map[int]string{
		0:   "Unknown",
		1:   "Daylight",
		2:   "Fluorescent",
		3:   "Tungsten (incandescent light)",
		4:   "Flash",
		9:   "Fine weather",
		10:  "Cloudy weather",
		11:  "Shade",
		17:  "Standard light A",
		18:  "Standard light B",
		19:  "Standard light C",
		255: "other",
	}
	colorSpaceValues = map[int]string{
		1:      "sRGB",
		2:      "Adobe RGB",
		0xFFFF: "Uncalibrated",
	}
	sensingMethodValues = map[int]string{
		1: "Not defined",
		2: "One-chip color area",
		3: "Two-chip color area",
		4: "Three-chip color area",
		5: "Color sequential area",
		7: "Trilinear",
		8: "Color sequential linear",
	}
	exposureModeValues = map[int]string{
		0: "Auto Exposure",
		1: "Manual Exposure",
		2: "Auto Bracket",
	}
	whiteBalanceValues = map[int]string{
		0: "Auto",
		1: "Manual",
	}
	sceneCaptureValues = map[int]string{
		0: "Standard",
		1: "Landscape",
		2: "Portrait",
		3: "Night",
	}
	gpsAltitudeRefValues = map[int]string{
		0: "Above Sea Level",
		1: "Below Sea Level",
	}
)

func init() {
	RegisterTagTable(IFD0, imageTags)
	RegisterTagTable(IFD1, imageTags)
	RegisterTagTable(ExifIFD, exifTags)
	RegisterTagTable(GPSIFD, gpsTags)
	RegisterTagTable(InteropIFD, interopTags)
}

// imageTags apply to both IFD0 and the thumbnail directory
var imageTags = []TagDef{
	{ID: 0x00FE, Name: "SubfileType"},
	{ID: 0x0100, Name: "ImageWidth"},
	{ID: 0x0101, Name: "ImageLength"},
	{ID: 0x0102, Name: "BitsPerSample"},
	{ID: 0x0103, Name: "Compression", Values: compressionValues},
	{ID: 0x0106, Name: "PhotometricInterpretation"},
	{ID: 0x010E, Name: "ImageDescription", Description: "Title of the image"},
	{ID: 0x010F, Name: "Make", Description: "Camera manufacturer"},
	{ID: 0x0110, Name: "Model", Description: "Camera model"},
	{ID: 0x0111, Name: "StripOffsets"},
	{ID: 0x0112, Name: "Orientation", Values: orientationValues},
	{ID: 0x0115, Name: "SamplesPerPixel"},
	{ID: 0x0116, Name: "RowsPerStrip"},
	{ID: 0x0117, Name: "StripByteCounts"},
	{ID: 0x011A, Name: "XResolution"},
	{ID: 0x011B, Name: "YResolution"},
	{ID: 0x011C, Name: "PlanarConfiguration"},
	{ID: 0x0128, Name: "ResolutionUnit", Values: resolutionUnitValues},
	{ID: 0x012D, Name: "TransferFunction"},
	{ID: 0x0131, Name: "Software", Description: "Processing software"},
	{ID: 0x0132, Name: "DateTime", Description: "File change date and time"},
	{ID: 0x013B, Name: "Artist", Description: "Person who created the image"},
	{ID: 0x013E, Name: "WhitePoint"},
	{ID: 0x013F, Name: "PrimaryChromaticities"},
	{ID: 0x0201, Name: "JPEGInterchangeFormat", Description: "Offset to JPEG thumbnail"},
	{ID: 0x0202, Name: "JPEGInterchangeFormatLength", Description: "Length of JPEG thumbnail"},
	{ID: 0x0211, Name: "YCbCrCoefficients"},
	{ID: 0x0212, Name: "YCbCrSubSampling"},
	{ID: 0x0213, Name: "YCbCrPositioning", Values: ycbcrPositioningValues},
	{ID: 0x0214, Name: "ReferenceBlackWhite"},
	{ID: 0x4746, Name: "Rating"},
	{ID: 0x8298, Name: "Copyright", Description: "Copyright holder"},
	{ID: 0x8769, Name: "ExifOffset", Description: "Exif IFD pointer"},
	{ID: 0x8825, Name: "GPSInfo", Description: "GPS IFD pointer"},
	{ID: 0x9C9B, Name: "XPTitle"},
	{ID: 0x9C9C, Name: "XPComment"},
	{ID: 0x9C9D, Name: "XPAuthor"},
	{ID: 0x9C9E, Name: "XPKeywords"},
	{ID: 0x9C9F, Name: "XPSubject"},
	{ID: 0xC4A5, Name: "PrintIM"},
}

var exifTags = []TagDef{
	{ID: 0x829A, Name: "ExposureTime"},
	{ID: 0x829D, Name: "FNumber"},
	{ID: 0x8822, Name: "ExposureProgram", Values: exposureProgramValues},
	{ID: 0x8824, Name: "SpectralSensitivity"},
	{ID: 0x8827, Name: "ISOSpeedRatings"},
	{ID: 0x8830, Name: "SensitivityType"},
	{ID: 0x8832, Name: "RecommendedExposureIndex"},
	{ID: 0x9000, Name: "ExifVersion"},
	{ID: 0x9003, Name: "DateTimeOriginal", Description: "Shutter actuation time"},
	{ID: 0x9004, Name: "DateTimeDigitized", Description: "Digitization time"},
	{ID: 0x9010, Name: "OffsetTime"},
	{ID: 0x9011, Name: "OffsetTimeOriginal"},
	{ID: 0x9012, Name: "OffsetTimeDigitized"},
	{ID: 0x9101, Name: "ComponentsConfiguration"},
	{ID: 0x9102, Name: "CompressedBitsPerPixel"},
	{ID: 0x9201, Name: "ShutterSpeedValue"},
	{ID: 0x9202, Name: "ApertureValue"},
	{ID: 0x9203, Name: "BrightnessValue"},
	{ID: 0x9204, Name: "ExposureBiasValue"},
	{ID: 0x9205, Name: "MaxApertureValue"},
	{ID: 0x9206, Name: "SubjectDistance"},
	{ID: 0x9207, Name: "MeteringMode", Values: meteringModeValues},
	{ID: 0x9208, Name: "LightSource", Values: lightSourceValues},
	{ID: 0x9209, Name: "Flash", Values: flashValues},
	{ID: 0x920A, Name: "FocalLength"},
	{ID: 0x9214, Name: "SubjectArea"},
	{ID: 0x927C, Name: "MakerNote", Description: "Manufacturer private data"},
	{ID: 0x9286, Name: "UserComment"},
	{ID: 0x9290, Name: "SubSecTime"},
	{ID: 0x9291, Name: "SubSecTimeOriginal"},
	{ID: 0x9292, Name: "SubSecTimeDigitized"},
	{ID: 0xA000, Name: "FlashPixVersion"},
	{ID: 0xA001, Name: "ColorSpace", Values: colorSpaceValues},
	{ID: 0xA002, Name: "ExifImageWidth"},
	{ID: 0xA003, Name: "ExifImageLength"},
	{ID: 0xA004, Name: "RelatedSoundFile"},
	{ID: 0xA005, Name: "InteroperabilityOffset"},
	{ID: 0xA20E, Name: "FocalPlaneXResolution"},
	{ID: 0xA20F, Name: "FocalPlaneYResolution"},
	{ID: 0xA210, Name: "FocalPlaneResolutionUnit", Values: resolutionUnitValues},
	{ID: 0xA215, Name: "ExposureIndex"},
	{ID: 0xA217, Name: "SensingMethod", Values: sensingMethodValues},
	{ID: 0xA300, Name: "FileSource"},
	{ID: 0xA301, Name: "SceneType"},
	{ID: 0xA302, Name: "CVAPattern"},
	{ID: 0xA401, Name: "CustomRendered"},
	{ID: 0xA402, Name: "ExposureMode", Values: exposureModeValues},
	{ID: 0xA403, Name: "WhiteBalance", Values: whiteBalanceValues},
	{ID: 0xA404, Name: "DigitalZoomRatio"},
	{ID: 0xA405, Name: "FocalLengthIn35mmFilm"},
	{ID: 0xA406, Name: "SceneCaptureType", Values: sceneCaptureValues},
	{ID: 0xA407, Name: "GainControl"},
	{ID: 0xA408, Name: "Contrast"},
	{ID: 0xA409, Name: "Saturation"},
	{ID: 0xA40A, Name: "Sharpness"},
	{ID: 0xA40C, Name: "SubjectDistanceRange"},
	{ID: 0xA420, Name: "ImageUniqueID"},
	{ID: 0xA430, Name: "CameraOwnerName"},
	{ID: 0xA431, Name: "BodySerialNumber"},
	{ID: 0xA432, Name: "LensSpecification"},
	{ID: 0xA433, Name: "LensMake"},
	{ID: 0xA434, Name: "LensModel"},
	{ID: 0xA435, Name: "LensSerialNumber"},
}

var gpsTags = []TagDef{
	{ID: 0x0000, Name: "GPSVersionID"},
	{ID: 0x0001, Name: "GPSLatitudeRef"},
	{ID: 0x0002, Name: "GPSLatitude"},
	{ID: 0x0003, Name: "GPSLongitudeRef"},
	{ID: 0x0004, Name: "GPSLongitude"},
	{ID: 0x0005, Name: "GPSAltitudeRef", Values: gpsAltitudeRefValues},
	{ID: 0x0006, Name: "GPSAltitude"},
	{ID: 0x0007, Name: "GPSTimeStamp"},
	{ID: 0x0008, Name: "GPSSatellites"},
	{ID: 0x0009, Name: "GPSStatus"},
	{ID: 0x000A, Name: "GPSMeasureMode"},
	{ID: 0x000B, Name: "GPSDOP"},
	{ID: 0x000C, Name: "GPSSpeedRef"},
	{ID: 0x000D, Name: "GPSSpeed"},
	{ID: 0x000E, Name: "GPSTrackRef"},
	{ID: 0x000F, Name: "GPSTrack"},
	{ID: 0x0010, Name: "GPSImgDirectionRef"},
	{ID: 0x0011, Name: "GPSImgDirection"},
	{ID: 0x0012, Name: "GPSMapDatum"},
	{ID: 0x0013, Name: "GPSDestLatitudeRef"},
	{ID: 0x0014, Name: "GPSDestLatitude"},
	{ID: 0x0015, Name: "GPSDestLongitudeRef"},
	{ID: 0x0016, Name: "GPSDestLongitude"},
	{ID: 0x0017, Name: "GPSDestBearingRef"},
	{ID: 0x0018, Name: "GPSDestBearing"},
	{ID: 0x0019, Name: "GPSDestDistanceRef"},
	{ID: 0x001A, Name: "GPSDestDistance"},
	{ID: 0x001B, Name: "GPSProcessingMethod"},
	{ID: 0x001C, Name: "GPSAreaInformation"},
	{ID: 0x001D, Name: "GPSDate"},
	{ID: 0x001E, Name: "GPSDifferential"},
}

var interopTags = []TagDef{
	{ID: 0x0001, Name: "InteroperabilityIndex"},
	{ID: 0x0002, Name: "InteroperabilityVersion"},
	{ID: 0x1000, Name: "RelatedImageFileFormat"},
	{ID: 0x1001, Name: "RelatedImageWidth"},
	{ID: 0x1002, Name: "RelatedImageLength"},
}
