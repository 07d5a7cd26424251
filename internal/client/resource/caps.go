package resource

import "github.com/jagamangrove/jagamangrove/internal/domain/users"

// Tabel kapabilitas per role. Layar tidak pernah mengecek role
// langsung; semua keputusan tampil/sembunyi lewat flag ini.

func LokasiCaps(role string) Capabilities {
	peneliti := role == string(users.RolePeneliti)
	return Capabilities{CanCreate: peneliti, CanEdit: peneliti, CanDelete: peneliti}
}

func JenisCaps(role string) Capabilities {
	// aturan sama dengan lokasi: katalog milik peneliti
	return LokasiCaps(role)
}

func LaporanCaps(role string) Capabilities {
	petugas := role == string(users.RolePeneliti) || role == string(users.RolePemerintah)
	return Capabilities{
		CanCreate: true, // siapa pun boleh lapor, termasuk anonim
		CanEdit:   petugas,
		CanDelete: petugas,
	}
}

func ForumCaps(role string) Capabilities {
	return Capabilities{
		CanCreate: true,
		CanDelete: role == string(users.RolePemerintah),
	}
}

func KeputusanCaps(role string) Capabilities {
	pemerintah := role == string(users.RolePemerintah)
	return Capabilities{
		CanCreate:    pemerintah,
		CanDelete:    pemerintah,
		RequiresAuth: true,
	}
}

func AnalisisCaps(role string) Capabilities {
	return Capabilities{RequiresAuth: true}
}
