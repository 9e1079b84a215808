package assistantService

import (
	"CatatUang/internal/entity"
	"testing"
	"time"
)

func TestResolveReportWindow(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	// A Wednesday in the middle of the month.
	now := time.Date(2025, time.August, 13, 14, 30, 0, 0, wib)

	tests := []struct {
		name      string
		query     string
		wantFrom  time.Time
		wantTo    time.Time
		wantLabel string
	}{
		{
			name:      "previous month",
			query:     "laporan bulan lalu",
			wantFrom:  time.Date(2025, time.July, 1, 0, 0, 0, 0, wib),
			wantTo:    time.Date(2025, time.August, 1, 0, 0, 0, 0, wib),
			wantLabel: "bulan lalu",
		},
		{
			name:      "current month",
			query:     "pengeluaran bulan ini",
			wantFrom:  time.Date(2025, time.August, 1, 0, 0, 0, 0, wib),
			wantTo:    time.Date(2025, time.September, 1, 0, 0, 0, 0, wib),
			wantLabel: "bulan ini",
		},
		{
			name:      "current week starts monday",
			query:     "rekap minggu ini",
			wantFrom:  time.Date(2025, time.August, 11, 0, 0, 0, 0, wib),
			wantTo:    time.Date(2025, time.August, 18, 0, 0, 0, 0, wib),
			wantLabel: "minggu ini",
		},
		{
			name:      "today",
			query:     "transaksi hari ini",
			wantFrom:  time.Date(2025, time.August, 13, 0, 0, 0, 0, wib),
			wantTo:    time.Date(2025, time.August, 14, 0, 0, 0, 0, wib),
			wantLabel: "hari ini",
		},
		{
			name:      "explicit date",
			query:     "laporan tanggal 12/05/2025",
			wantFrom:  time.Date(2025, time.May, 12, 0, 0, 0, 0, wib),
			wantTo:    time.Date(2025, time.May, 13, 0, 0, 0, 0, wib),
			wantLabel: "pada 2025-05-12",
		},
		{
			name:      "unrecognized defaults to current month",
			query:     "berapa total pengeluaran saya",
			wantFrom:  time.Date(2025, time.August, 1, 0, 0, 0, 0, wib),
			wantTo:    time.Date(2025, time.September, 1, 0, 0, 0, 0, wib),
			wantLabel: "bulan ini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, label := resolveReportWindow(tt.query, now)
			if !from.Equal(tt.wantFrom) {
				t.Errorf("from = %v, want %v", from, tt.wantFrom)
			}
			if !to.Equal(tt.wantTo) {
				t.Errorf("to = %v, want %v", to, tt.wantTo)
			}
			if label != tt.wantLabel {
				t.Errorf("label = %q, want %q", label, tt.wantLabel)
			}
		})
	}
}

func TestResolveReportWindowSundayWeek(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	// Sunday belongs to the week that started the previous Monday.
	now := time.Date(2025, time.August, 17, 9, 0, 0, 0, wib)

	from, to, _ := resolveReportWindow("minggu ini", now)
	if want := time.Date(2025, time.August, 11, 0, 0, 0, 0, wib); !from.Equal(want) {
		t.Errorf("from = %v, want %v", from, want)
	}
	if want := time.Date(2025, time.August, 18, 0, 0, 0, 0, wib); !to.Equal(want) {
		t.Errorf("to = %v, want %v", to, want)
	}
}

func TestComputedSummary(t *testing.T) {
	rows := []entity.Transaction{
		{Type: "income", Amount: 5000000},
		{Type: "expense", Amount: 20000},
		{Type: "expense", Amount: 150000},
	}

	got := computedSummary(rows, "bulan ini")
	want := "Ringkasan bulan ini: 3 transaksi, pemasukan Rp5000000, pengeluaran Rp170000, selisih Rp4830000."
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestSanitizeReportReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{
			name:  "plain text untouched",
			reply: "Pengeluaran terbesar adalah makanan.",
			want:  "Pengeluaran terbesar adalah makanan.",
		},
		{
			name:  "bullets and bold stripped",
			reply: "**Ringkasan**\n- Kopi Rp20.000\n* Bensin Rp50.000",
			want:  "Ringkasan\nKopi Rp20.000\nBensin Rp50.000",
		},
		{
			name:  "numbered list and heading",
			reply: "## Laporan\n1. Makan Rp15.000\n2) Transport Rp10.000",
			want:  "Laporan\nMakan Rp15.000\nTransport Rp10.000",
		},
		{
			name:  "blank lines dropped",
			reply: "Baris satu\n\n\nBaris dua",
			want:  "Baris satu\nBaris dua",
		},
		{
			name:  "backticks removed",
			reply: "Total `Rp170.000` bulan ini",
			want:  "Total Rp170.000 bulan ini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeReportReply(tt.reply); got != tt.want {
				t.Errorf("sanitizeReportReply(%q) = %q, want %q", tt.reply, got, tt.want)
			}
		})
	}
}
