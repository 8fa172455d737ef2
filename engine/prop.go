package engine

import "strconv"

// PropID identifies one metadata property, archive- or entry-scoped.
//
// The ordinals follow the 7-Zip kpid property space, which is the ordinal
// space the original p7zip-based engine understood. The values are part of
// the contract and must not be reordered.
type PropID int32

const (
	PropIDNoProperty PropID = iota
	PropIDMainSubfile
	PropIDHandlerItemIndex
	PropIDPath
	PropIDName
	PropIDExtension
	PropIDIsDir
	PropIDSize
	PropIDPackSize
	PropIDAttributes
	PropIDCreationTime
	PropIDAccessTime
	PropIDModificationTime
	PropIDSolid
	PropIDCommented
	PropIDEncrypted
	PropIDSplitBefore
	PropIDSplitAfter
	PropIDDictionarySize
	PropIDCRC
	PropIDType
	PropIDIsAnti
	PropIDMethod
	PropIDHostOS
	PropIDFileSystem
	PropIDUser
	PropIDGroup
	PropIDBlock
	PropIDComment
	PropIDPosition
	PropIDPrefix
	PropIDNumSubDirs
	PropIDNumSubFiles
	PropIDUnpackVersion
	PropIDVolume
	PropIDIsVolume
	PropIDOffset
	PropIDLinks
	PropIDNumBlocks
	PropIDNumVolumes
	PropIDTimeType
	PropIDBit64
	PropIDBigEndian
	PropIDCPU
	PropIDPhysicalSize
	PropIDHeadersSize
	PropIDChecksum
	PropIDCharacteristics
	PropIDVirtualAddress
	PropIDID
	PropIDShortName
	PropIDCreatorApplication
	PropIDSectorSize
	PropIDPosixAttributes
	PropIDSymLink
	PropIDError
)

var propIDNames = map[PropID]string{
	PropIDNoProperty:         "NoProperty",
	PropIDPath:               "Path",
	PropIDName:               "Name",
	PropIDExtension:          "Extension",
	PropIDIsDir:              "IsDir",
	PropIDSize:               "Size",
	PropIDPackSize:           "PackSize",
	PropIDAttributes:         "Attributes",
	PropIDCreationTime:       "CreationTime",
	PropIDAccessTime:         "AccessTime",
	PropIDModificationTime:   "ModificationTime",
	PropIDEncrypted:          "Encrypted",
	PropIDCRC:                "CRC",
	PropIDType:               "Type",
	PropIDMethod:             "Method",
	PropIDHostOS:             "HostOS",
	PropIDUser:               "User",
	PropIDGroup:              "Group",
	PropIDComment:            "Comment",
	PropIDNumSubDirs:         "NumSubDirs",
	PropIDNumSubFiles:        "NumSubFiles",
	PropIDVolume:             "Volume",
	PropIDIsVolume:           "IsVolume",
	PropIDPhysicalSize:       "PhysicalSize",
	PropIDHeadersSize:        "HeadersSize",
	PropIDPosixAttributes:    "PosixAttributes",
	PropIDSymLink:            "SymLink",
	PropIDCreatorApplication: "CreatorApplication",
}

func (id PropID) String() string {
	if name, ok := propIDNames[id]; ok {
		return name
	}
	return "PropID(" + strconv.Itoa(int(id)) + ")"
}

// PropType is the closed set of value kinds a property can resolve to.
type PropType int32

const (
	TypeEmpty PropType = iota
	TypeBool
	TypeInt
	TypeLong
	TypeString
	TypeFileTime
	TypeUnknown
)

func (t PropType) String() string {
	switch t {
	case TypeEmpty:
		return "empty"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeString:
		return "string"
	case TypeFileTime:
		return "filetime"
	default:
		return "unknown"
	}
}

// ResolveType maps a raw backend type tag to a PropType. The mapping is
// total: any tag outside the known range resolves to TypeUnknown, so a
// backend evolving its tag space independently can never push an invalid
// tag past this point.
func ResolveType(tag int32) PropType {
	switch t := PropType(tag); t {
	case TypeEmpty, TypeBool, TypeInt, TypeLong, TypeString, TypeFileTime:
		return t
	default:
		return TypeUnknown
	}
}
