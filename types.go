package a7zip

import "github.com/jyushion/a7zip/engine"

// --- Re-exports from engine ---

// PropID identifies one metadata property, archive- or entry-scoped.
type PropID = engine.PropID

// PropType is the closed set of value kinds a property can resolve to.
type PropType = engine.PropType

// Value is one property value: a PropType kind plus its payload.
type Value = engine.Value

// ByteSource provides random access to the raw bytes of an archive.
type ByteSource = engine.ByteSource

// ResolveType maps a raw backend type tag to a PropType, degrading any
// unknown tag to TypeUnknown.
var ResolveType = engine.ResolveType

// PropType constants.
const (
	TypeEmpty    = engine.TypeEmpty
	TypeBool     = engine.TypeBool
	TypeInt      = engine.TypeInt
	TypeLong     = engine.TypeLong
	TypeString   = engine.TypeString
	TypeFileTime = engine.TypeFileTime
	TypeUnknown  = engine.TypeUnknown
)

// PropID constants, following the 7-Zip kpid ordinal space.
const (
	PropIDNoProperty         = engine.PropIDNoProperty
	PropIDMainSubfile        = engine.PropIDMainSubfile
	PropIDHandlerItemIndex   = engine.PropIDHandlerItemIndex
	PropIDPath               = engine.PropIDPath
	PropIDName               = engine.PropIDName
	PropIDExtension          = engine.PropIDExtension
	PropIDIsDir              = engine.PropIDIsDir
	PropIDSize               = engine.PropIDSize
	PropIDPackSize           = engine.PropIDPackSize
	PropIDAttributes         = engine.PropIDAttributes
	PropIDCreationTime       = engine.PropIDCreationTime
	PropIDAccessTime         = engine.PropIDAccessTime
	PropIDModificationTime   = engine.PropIDModificationTime
	PropIDSolid              = engine.PropIDSolid
	PropIDCommented          = engine.PropIDCommented
	PropIDEncrypted          = engine.PropIDEncrypted
	PropIDSplitBefore        = engine.PropIDSplitBefore
	PropIDSplitAfter         = engine.PropIDSplitAfter
	PropIDDictionarySize     = engine.PropIDDictionarySize
	PropIDCRC                = engine.PropIDCRC
	PropIDType               = engine.PropIDType
	PropIDIsAnti             = engine.PropIDIsAnti
	PropIDMethod             = engine.PropIDMethod
	PropIDHostOS             = engine.PropIDHostOS
	PropIDFileSystem         = engine.PropIDFileSystem
	PropIDUser               = engine.PropIDUser
	PropIDGroup              = engine.PropIDGroup
	PropIDBlock              = engine.PropIDBlock
	PropIDComment            = engine.PropIDComment
	PropIDPosition           = engine.PropIDPosition
	PropIDPrefix             = engine.PropIDPrefix
	PropIDNumSubDirs         = engine.PropIDNumSubDirs
	PropIDNumSubFiles        = engine.PropIDNumSubFiles
	PropIDUnpackVersion      = engine.PropIDUnpackVersion
	PropIDVolume             = engine.PropIDVolume
	PropIDIsVolume           = engine.PropIDIsVolume
	PropIDOffset             = engine.PropIDOffset
	PropIDLinks              = engine.PropIDLinks
	PropIDNumBlocks          = engine.PropIDNumBlocks
	PropIDNumVolumes         = engine.PropIDNumVolumes
	PropIDTimeType           = engine.PropIDTimeType
	PropIDBit64              = engine.PropIDBit64
	PropIDBigEndian          = engine.PropIDBigEndian
	PropIDCPU                = engine.PropIDCPU
	PropIDPhysicalSize       = engine.PropIDPhysicalSize
	PropIDHeadersSize        = engine.PropIDHeadersSize
	PropIDChecksum           = engine.PropIDChecksum
	PropIDCharacteristics    = engine.PropIDCharacteristics
	PropIDVirtualAddress     = engine.PropIDVirtualAddress
	PropIDID                 = engine.PropIDID
	PropIDShortName          = engine.PropIDShortName
	PropIDCreatorApplication = engine.PropIDCreatorApplication
	PropIDSectorSize         = engine.PropIDSectorSize
	PropIDPosixAttributes    = engine.PropIDPosixAttributes
	PropIDSymLink            = engine.PropIDSymLink
	PropIDError              = engine.PropIDError
)
