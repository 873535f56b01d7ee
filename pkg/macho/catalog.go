package macho

import "github.com/ssargent/machorec/pkg/codec"

// Magic numbers, as read from the first four bytes of a file or slice.
// The swapped forms mean the slice is encoded in the opposite byte order.
const (
	Magic32         = 0xFEEDFACE
	Magic64         = 0xFEEDFACF
	Magic32Swapped  = 0xCEFAEDFE
	Magic64Swapped  = 0xCFFAEDFE
	MagicFat        = 0xCAFEBABE
	MagicFatSwapped = 0xBEBAFECA
)

// FatHeader is the first 8 bytes of a universal (fat) binary.
var FatHeader = codec.MustSchema("fat_header",
	codec.U32("magic"),
	codec.U32("nfat_archs"),
)

// FatArch describes one architecture slice inside a fat binary.
var FatArch = codec.MustSchema("fat_arch",
	codec.U32("cpu_type"),
	codec.U32("cpu_subtype"),
	codec.U32("offset"),
	codec.U32("size"),
	codec.U32("align"),
)

// MachHeader64 is the 64-bit Mach-O file header.
var MachHeader64 = codec.MustSchema("mach_header_64",
	codec.U32("magic"),
	codec.U32("cpu_type"),
	codec.U32("cpu_subtype"),
	codec.U32("filetype"),
	codec.U32("loadcnt"),
	codec.U32("loadsize"),
	codec.U32("flags"),
	codec.U32("void"),
)

// LoadCommand is the generic 8-byte prefix shared by every load command;
// it is what callers decode when the command tag is not recognized.
var LoadCommand = codec.MustSchema("load_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
)

var SegmentCommand64 = codec.MustSchema("segment_command_64",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.Blob("segname", 16),
	codec.U64("vmaddr"),
	codec.U64("vmsize"),
	codec.U64("fileoff"),
	codec.U64("filesize"),
	codec.U32("maxprot"),
	codec.U32("initprot"),
	codec.U32("nsects"),
	codec.U32("flags"),
)

// Section64 descriptors follow their segment command back to back,
// nsects of them.
var Section64 = codec.MustSchema("section_64",
	codec.Blob("sectname", 16),
	codec.Blob("segname", 16),
	codec.U64("addr"),
	codec.U64("size"),
	codec.U32("offset"),
	codec.U32("align"),
	codec.U32("reloff"),
	codec.U32("nreloc"),
	codec.U32("flags"),
	codec.U32("reserved1"),
	codec.U32("reserved2"),
	codec.U32("reserved3"),
)

var SymtabCommand = codec.MustSchema("symtab_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.U32("symoff"),
	codec.U32("nsyms"),
	codec.U32("stroff"),
	codec.U32("strsize"),
)

var DysymtabCommand = codec.MustSchema("dysymtab_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.U32("ilocalsym"),
	codec.U32("nlocalsym"),
	codec.U32("iextdefsym"),
	codec.U32("nextdefsym"),
	codec.U32("iundefsym"),
	codec.U32("nundefsym"),
	codec.U32("tocoff"),
	codec.U32("ntoc"),
	codec.U32("modtaboff"),
	codec.U32("nmodtab"),
	codec.U32("extrefsymoff"),
	codec.U32("nextrefsyms"),
	codec.U32("indirectsymoff"),
	codec.U32("nindirectsyms"),
	codec.U32("extreloff"),
	codec.U32("nextrel"),
	codec.U32("locreloff"),
	codec.U32("nlocrel"),
)

// Dylib is the payload embedded in a dylib_command.
var Dylib = codec.MustSchema("dylib",
	codec.U32("name"),
	codec.U32("timestamp"),
	codec.U32("current_version"),
	codec.U32("compatibility_version"),
)

// DylibCommand carries the embedded dylib struct as an opaque area;
// re-decode it with the Dylib schema when the inner fields matter.
var DylibCommand = codec.MustSchema("dylib_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.Blob("dylib", 16),
)

var DylinkerCommand = codec.MustSchema("dylinker_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.U32("name"),
)

var SubClientCommand = codec.MustSchema("sub_client_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.U32("offset"),
)

var UUIDCommand = codec.MustSchema("uuid_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.Blob("uuid", 16),
)

var BuildVersionCommand = codec.MustSchema("build_version_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.U32("platform"),
	codec.U32("minos"),
	codec.U32("sdk"),
	codec.U32("ntools"),
)

var EntryPointCommand = codec.MustSchema("entry_point_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.U64("entryoff"),
	codec.U64("stacksize"),
)

var RpathCommand = codec.MustSchema("rpath_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.U32("path"),
)

var SourceVersionCommand = codec.MustSchema("source_version_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.U64("version"),
)

// LinkeditDataCommand is the generic offset/size command (code signature,
// function starts, data-in-code and friends).
var LinkeditDataCommand = codec.MustSchema("linkedit_data_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.U32("dataoff"),
	codec.U32("datasize"),
)

var DyldInfoCommand = codec.MustSchema("dyld_info_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.U32("rebase_off"),
	codec.U32("rebase_size"),
	codec.U32("bind_off"),
	codec.U32("bind_size"),
	codec.U32("weak_bind_off"),
	codec.U32("weak_bind_size"),
	codec.U32("lazy_bind_off"),
	codec.U32("lazy_bind_size"),
	codec.U32("export_off"),
	codec.U32("export_size"),
)

var VersionMinCommand = codec.MustSchema("version_min_command",
	codec.U32("cmd"),
	codec.U32("cmdsize"),
	codec.U32("version"),
	codec.U32("reserved"),
)

// Nlist64 is the on-disk symbol table entry.
var Nlist64 = codec.MustSchema("nlist_64",
	codec.U32("str_index"),
	codec.U8("type"),
	codec.U8("sect_index"),
	codec.U16("desc"),
	codec.U64("value"),
)
