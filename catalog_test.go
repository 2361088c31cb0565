package technical

import "testing"

func TestFacadeEndToEnd(t *testing.T) {
	adapter := NewAdapter(NewMemoryStore(), "", nil)

	c, err := NewCatalog(adapter, nil)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	session := NewSession(c, DefaultPageSize)
	if _, err := session.Submit(Form{Name: "Pen", Price: "1.5", Category: "Stationery"}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := session.Submit(Form{Name: "Notebook", Price: "3", Category: "Stationery"}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	stored, err := adapter.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(Filter(stored, "stationery")) != 2 {
		t.Errorf("Expected both products to match 'stationery'")
	}
	if len(Paginate(stored, 1, 1)) != 1 {
		t.Errorf("Expected one product on a page of size 1")
	}
}
